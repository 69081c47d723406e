package demo

import (
	"fmt"

	"github.com/slidekit/slidekit/internal/catalog"
	"github.com/slidekit/slidekit/internal/config"
)

func configForTest() *config.Config {
	return config.DefaultConfig()
}

func testCatalog() []catalog.Product {
	products := make([]catalog.Product, 8)
	for i := range products {
		products[i] = catalog.Product{
			ID:       fmt.Sprintf("p-%d", i),
			Name:     fmt.Sprintf("Product %d", i),
			Price:    float64(10 + i),
			Currency: "USD",
		}
	}
	return products
}
