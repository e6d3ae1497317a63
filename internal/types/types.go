package types

type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

type WordList struct {
	Words []WordEntry `json:"words"`
}
