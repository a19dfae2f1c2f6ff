package notifications

// Exported aliases for the external test package.
var (
	ApplicationIDEmptyErr = applicationIDEmptyErr
	InternshipIDEmptyErr  = internshipIDEmptyErr
	StatusEmptyErr        = statusEmptyErr
	AvroMarshalErr        = avroMarshalErr
	NewGeneratorError     = newGeneratorError
)
