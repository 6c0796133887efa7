package services

import (
	"fmt"
	"math/rand"
	"net/url"

	"gnstore/internal/domain"
)

const fallbackSize = 150

var fallbackCategories = []string{"سماعات", "شاحنات", "كيبلات", "لزقات حماية", "اكسسوارات"}

var fallbackNames = map[string][]string{
	"سماعات":      {"سماعة بلوتوث JBL", "سماعة Sony", "سماعة Beats", "سماعة Bose", "سماعة AirPods"},
	"شاحنات":      {"شاحن سريع Samsung", "شاحن iPhone", "شاحن لاسلكي", "شاحن محمول", "شاحن سيارة"},
	"كيبلات":      {"كيبل USB-C", "كيبل Lightning", "كيبل Micro USB", "كيبل HDMI", "كيبل AUX"},
	"لزقات حماية": {"واقي شاشة iPhone", "واقي شاشة Samsung", "واقي كاميرا", "جراب حماية", "واقي ظهر"},
	"اكسسوارات":   {"حامل هاتف للسيارة", "حامل مكتبي", "مسكة هاتف", "حقيبة لابتوب", "ماوس لاسلكي"},
}

// syntheticCatalog is the last fallback: a deterministically shaped sample
// catalog (fixed size, fixed category set, sequential ids, first ten
// featured) with randomized prices and stock so the store always has
// something to serve. It is intentionally large enough to exercise
// pagination.
func syntheticCatalog() []domain.Product {
	products := make([]domain.Product, 0, fallbackSize)
	for i := 1; i <= fallbackSize; i++ {
		category := fallbackCategories[rand.Intn(len(fallbackCategories))]
		names := fallbackNames[category]
		baseName := names[rand.Intn(len(names))]

		products = append(products, domain.Product{
			ID:          i,
			Name:        fmt.Sprintf("%s - موديل %d", baseName, i),
			Category:    category,
			Price:       rand.Intn(90000) + 10000,
			Description: fmt.Sprintf("وصف تفصيلي للمنتج %s موديل %d. منتج عالي الجودة بأفضل الأسعار ومواصفات ممتازة.", baseName, i),
			ImageURL:    fmt.Sprintf("https://via.placeholder.com/300x300?text=%s+%d", url.QueryEscape(baseName), i),
			Stock:       rand.Intn(50) + 1,
			Featured:    i <= 10,
		})
	}
	return products
}
