package dto

type LanguageResponse struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Speaker string `json:"speaker"`
}
