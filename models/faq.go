package models

// FAQItem is a help-center question/answer pair.
type FAQItem struct {
	Q string `json:"q"`
	A string `json:"a"`
}
