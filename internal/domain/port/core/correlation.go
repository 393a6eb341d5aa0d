package core

// CorrelationCodeGenerator produces the human-facing code users quote when
// matching an out-of-band payment to a request
type CorrelationCodeGenerator interface {
	Generate() string
}
