package requests

type ResolveIdentifier struct {
	Input string `json:"input" validate:"required"`
}
