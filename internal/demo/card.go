package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slidekit/slidekit/internal/carousel"
	"github.com/slidekit/slidekit/internal/catalog"
)

// cardRenderer builds the carousel render delegate for a catalog, closing
// over the display currency.
func cardRenderer(fallbackCurrency string) carousel.RenderFunc {
	return func(item carousel.Item, width int, selected bool) string {
		product, ok := item.(catalog.Product)
		if !ok {
			return item.ItemID()
		}
		return renderCard(product, width, selected, fallbackCurrency)
	}
}

// renderCard renders one product card at exactly the given width.
func renderCard(product catalog.Product, width int, selected bool, fallbackCurrency string) string {
	border := cardBorderStyle
	if selected {
		border = selectedCardBorderStyle
	}

	// Border and padding cost four columns.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	line := lipgloss.NewStyle().Width(inner).MaxWidth(inner)

	name := line.Inherit(cardNameStyle).Render(product.Name)
	price := line.Inherit(cardPriceStyle).Render(
		catalog.FormatPrice(product.Price, product.Currency, fallbackCurrency))

	rows := []string{name, price}
	if product.Tag != "" {
		rows = append(rows, cardTagStyle.Render(product.Tag))
	}
	if product.Description != "" {
		rows = append(rows, line.Inherit(cardDescStyle).Render(product.Description))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return border.Width(width - 2).Render(body)
}
