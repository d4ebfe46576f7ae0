package domain

// Product описывает товар каталога.
// Каталог читается целиком из подготовленного файла и неизменяем в рамках запроса.
type Product struct {
	ID           string
	Asin         string // уникальный идентификатор товара
	Title        string
	Price        string // цена из каталога, строковое представление ("599.99")
	Description  []string
	Tags         []string
	Rating       string
	ReviewCount  int
	MainImageURL string
	PageURL      string
	Merchandise  string
	Country      string
	ScrapedAt    string
	// EmbeddingIndex — индекс вектора товара в таблице эмбеддингов.
	// nil, если вектор для товара не посчитан.
	EmbeddingIndex *int
}
