package services

import (
	"strconv"
	"strings"

	"gnstore/internal/domain"
)

// parseCatalogCSV turns the raw CSV export into catalog records. The first
// line is the header row and defines the column layout; rows whose id or
// name come out empty are dropped. The feed escapes embedded commas with
// double quotes, so splitting is quote-aware rather than a plain
// strings.Split per cell.
func parseCatalogCSV(data string) []domain.Product {
	lines := strings.Split(data, "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := splitCSVLine(lines[0])
	for i, h := range headers {
		headers[i] = unquote(h)
	}

	out := make([]domain.Product, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitCSVLine(line)

		var p domain.Product
		for i, h := range headers {
			var cell string
			if i < len(cells) {
				cell = unquote(cells[i])
			}
			switch h {
			case "id":
				p.ID = toInt(cell)
			case "name":
				p.Name = cell
			case "category":
				p.Category = cell
			case "price":
				p.Price = toInt(cell)
			case "description":
				p.Description = cell
			case "image_url":
				p.ImageURL = cell
			case "stock":
				p.Stock = toInt(cell)
			case "featured":
				p.Featured = strings.EqualFold(cell, "true")
			case "views":
				p.Views = toInt(cell)
			}
		}
		if p.ID == 0 || p.Name == "" {
			continue // row missing its identity, not admitted
		}
		out = append(out, p)
	}
	return out
}

// splitCSVLine splits on commas outside quoted spans. A quote character
// toggles the in-quotes state; it does not itself end up in the cell
// because unquote strips quotes afterwards.
func splitCSVLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	cells = append(cells, current.String())
	return cells
}

func unquote(cell string) string {
	return strings.TrimSpace(strings.ReplaceAll(cell, `"`, ""))
}

// toInt mirrors the feed's forgiving coercion: anything unparsable is 0.
func toInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
