package converter

// ProductModel — запись каталога в том виде, в котором её отдаёт пайплайн
// подготовки данных (combined_processed.json).
type ProductModel struct {
	ID             string   `json:"id"`
	Asin           string   `json:"asin"`
	Title          string   `json:"title"`
	Price          string   `json:"price"`
	Description    []string `json:"description"`
	Tags           []string `json:"tags"`
	Rating         string   `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	MainImageURL   string   `json:"main_image_url"`
	PageURL        string   `json:"page_url"`
	Merchandise    string   `json:"merchandise"`
	Country        string   `json:"country"`
	ScrapedAt      string   `json:"scraped_at"`
	EmbeddingIndex *int     `json:"embedding_index"`
}
