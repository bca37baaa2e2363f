package entity

// Document is a source file and its extracted raw text. Transient; it exists
// only while a batch iteration is processing the file.
type Document struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}
