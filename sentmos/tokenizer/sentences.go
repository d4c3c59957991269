package tokenizer

// Sentences tokenizes and pads a list of sentences using the named
// pretrained model. Convenience wrapper for one-shot use; callers that
// tokenize repeatedly should construct a Pretrained once and reuse it.
func Sentences(sentences []string, modelName string) (*Batch, error) {
	t, err := NewPretrained(modelName, Config{})
	if err != nil {
		return nil, err
	}
	return t.Tokenize(sentences)
}
