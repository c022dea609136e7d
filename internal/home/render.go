package home

import (
	"fmt"
	"io"
	"strings"

	"github.com/trendify-core/client/internal/model"
)

const (
	screenTitle    = "Home Screen"
	sectionTitle   = "Popular Product"
	promoKicker    = "A Spring Surprise"
	promoHeadline  = "Cashback 25%"
	emptyMessage   = "No products available"
	loadingMessage = "loading..."
)

// Nav lists the navigation targets reachable from the home screen.
var Nav = []string{"Home", "Favorites", "Profile", "Cart"}

// Render writes the home screen as plain text.
func Render(w io.Writer, st State) error {
	var b strings.Builder

	fmt.Fprintf(&b, "== %s ==\n", screenTitle)
	if st.Query != "" {
		fmt.Fprintf(&b, "Search product: %s\n", st.Query)
	}
	fmt.Fprintf(&b, "\n[ %s | %s ]\n", promoKicker, promoHeadline)
	fmt.Fprintf(&b, "Categories: %s\n\n", strings.Join(st.Categories, " · "))
	fmt.Fprintf(&b, "%s\n", sectionTitle)

	if st.Phase != PhaseReady {
		fmt.Fprintf(&b, "  %s\n  %s\n", emptyMessage, loadingMessage)
	} else {
		if len(st.Products) == 0 {
			fmt.Fprintf(&b, "  no match for %q (%d products)\n", st.Query, st.Total)
		}
		for _, p := range st.Products {
			writeCard(&b, p)
		}
		if st.Query != "" && len(st.Products) > 0 {
			fmt.Fprintf(&b, "  showing %d of %d\n", len(st.Products), st.Total)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Join(Nav, " | "))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCard(b *strings.Builder, p model.Product) {
	badge := ""
	if pct := p.DiscountPercent(); pct > 0 {
		badge = fmt.Sprintf(" [-%d %%]", pct)
	}
	marks := ""
	if p.InFavorites {
		marks += " ♥"
	}
	if p.InCart {
		marks += " (in cart)"
	}
	fmt.Fprintf(b, "  #%d %s%s%s\n", p.ID, p.Name, badge, marks)
	fmt.Fprintf(b, "     Price: %s", p.Price.StringFixed(2))
	if p.OldPrice.GreaterThan(p.Price) {
		fmt.Fprintf(b, "   Old Price: %s", p.OldPrice.StringFixed(2))
	}
	b.WriteString("\n")
}
