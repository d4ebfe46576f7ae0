package converter

import "github.com/scroller-tech/go-backend/internal/domain"

type ProductConverter interface {
	ToEntity(model *ProductModel) domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) domain.Product {
	return domain.Product{
		ID:             model.ID,
		Asin:           model.Asin,
		Title:          model.Title,
		Price:          model.Price,
		Description:    model.Description,
		Tags:           model.Tags,
		Rating:         model.Rating,
		ReviewCount:    model.ReviewCount,
		MainImageURL:   model.MainImageURL,
		PageURL:        model.PageURL,
		Merchandise:    model.Merchandise,
		Country:        model.Country,
		ScrapedAt:      model.ScrapedAt,
		EmbeddingIndex: model.EmbeddingIndex,
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	out := make([]domain.Product, 0, len(models))
	for i := range models {
		out = append(out, c.ToEntity(&models[i]))
	}

	return out
}
