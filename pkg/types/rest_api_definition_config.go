package types

// RestAPIDefinitionConfig DTO descreve uma API REST mantida a partir de um
// documento OpenAPI/Swagger local ou no S3.
type RestAPIDefinitionConfig struct {
	BodyLocation   string
	Mode           string
	FailOnWarnings bool
	Parameters     map[string]string
	StageName      string
	Description    string
}
