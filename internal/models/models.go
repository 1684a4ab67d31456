package models

// Record is one line of an NDJSON embeddings file.
type Record struct {
	Embedding []float64 `json:"embedding"`
	Chunk     string    `json:"chunk"`
}

// VisualizationPayload is the data object embedded into the served page.
// It is built once at startup and never mutated afterwards.
type VisualizationPayload struct {
	Matrix        [][]float64 `json:"matrix"`
	RowLabels     []string    `json:"rowLabels"`
	ColLabels     []string    `json:"colLabels"`
	RowLabelsFull []string    `json:"rowLabelsFull"`
	ColLabelsFull []string    `json:"colLabelsFull"`
	File1         string      `json:"file1"`
	File2         string      `json:"file2"`
	Model         string      `json:"model"`
}

// ReadResponse is the envelope returned by the hosted read-URL API.
// Only the fields we log or validate are mapped; the rest of the
// envelope is ignored.
type ReadResponse struct {
	Code   int       `json:"code"`
	Status int       `json:"status"`
	Data   *ReadData `json:"data"`
}

type ReadData struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	Links       map[string]string `json:"links,omitempty"`
	Usage       Usage             `json:"usage"`
}

type Usage struct {
	Tokens int `json:"tokens"`
}
