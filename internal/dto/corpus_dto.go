package dto

import "github.com/google/uuid"

// PassageRecord matches one entry of the corpus JSON file consumed by the
// seeder: {id, text, kanda, topic, characters}.
type PassageRecord struct {
	Id         string   `json:"id"`
	Text       string   `json:"text"`
	Kanda      string   `json:"kanda"`
	Topic      string   `json:"topic"`
	Characters []string `json:"characters"`
}

type PassageResponse struct {
	Id         uuid.UUID `json:"id"`
	ExternalId string    `json:"external_id"`
	Text       string    `json:"text"`
	Kanda      string    `json:"kanda"`
	Topic      string    `json:"topic"`
	Characters []string  `json:"characters,omitempty"`
	Embedded   bool      `json:"embedded"`
}

type CorpusStatsResponse struct {
	Passages int64 `json:"passages"`
	Embedded int64 `json:"embedded"`
	Pending  int64 `json:"pending"`
}

type ReindexResponse struct {
	Enqueued int `json:"enqueued"`
}

// PublishEmbedPassageMessage is the payload of an EMBED_PASSAGE event.
type PublishEmbedPassageMessage struct {
	PassageId uuid.UUID `json:"passage_id"`
}
