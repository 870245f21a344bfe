package constants

// Canonical professor field keys. Spreadsheet columns are mapped onto this
// fixed vocabulary; projection guarantees every key is present in a record.
const (
	FieldCedula             = "cedula"
	FieldNombres            = "nombres"
	FieldApellidos          = "apellidos"
	FieldEmail              = "email"
	FieldRelacionLaboral    = "relacion_laboral"
	FieldTituloPhd          = "titulo_phd"
	FieldDedicacion         = "dedicacion"
	FieldCarrera            = "carrera"
	FieldImaCorreo          = "ima_correo"
	FieldImaPdf             = "ima_pdf"
	FieldImaIresearch       = "ima_iresearch"
	FieldPresentacion       = "presentacion"
	FieldDocencia           = "docencia"
	FieldURLImagen          = "url_imagen"
	FieldPublicaciones      = "publicaciones"
	FieldGrupoInvestigacion = "grupo_investigacion"
)

var KnownFieldKeys = []string{
	FieldCedula,
	FieldNombres,
	FieldApellidos,
	FieldEmail,
	FieldRelacionLaboral,
	FieldTituloPhd,
	FieldDedicacion,
	FieldCarrera,
	FieldImaCorreo,
	FieldImaPdf,
	FieldImaIresearch,
	FieldPresentacion,
	FieldDocencia,
	FieldURLImagen,
	FieldPublicaciones,
	FieldGrupoInvestigacion,
}

// IdentityFieldKeys must never be absent from a projected record, even when
// the faculty has no mapping configured for them.
var IdentityFieldKeys = []string{
	FieldCedula,
	FieldNombres,
	FieldApellidos,
	FieldEmail,
	FieldCarrera,
}

// Default human labels shown in the admin mapping panel.
var DefaultFieldLabels = map[string]string{
	FieldCedula:             "ID",
	FieldNombres:            "First Name",
	FieldApellidos:          "Last Name",
	FieldEmail:              "Email",
	FieldRelacionLaboral:    "Employment Relationship",
	FieldTituloPhd:          "PhD Title",
	FieldDedicacion:         "Dedication",
	FieldCarrera:            "Career",
	FieldImaCorreo:          "Email Image",
	FieldImaPdf:             "CV PDF",
	FieldImaIresearch:       "Research Profile",
	FieldPresentacion:       "Presentation",
	FieldDocencia:           "Teaching",
	FieldURLImagen:          "Profile Image",
	FieldPublicaciones:      "Publications",
	FieldGrupoInvestigacion: "Research Group",
}

// O(n) validator (fine for small list)
func IsKnownFieldKey(k string) bool {
	for _, known := range KnownFieldKeys {
		if known == k {
			return true
		}
	}
	return false
}
