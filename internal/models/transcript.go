package models

type Transcript struct {
	Text         string `json:"text"`
	Language     string `json:"language"`      // display name, ex: "English"
	LanguageCode string `json:"language_code"` // ex: "en"
}
