package handlers_test

import (
	"testing"

	"pocketmart/internal/domain"
)

// Form values live on in the store long after their request returns;
// traffic that follows must never reach them through reused buffers.
func TestStateSurvivesLaterRequests(t *testing.T) {
	app, st := newTestApp(t)
	tok := csrfToken(t, app)

	postForm(t, app, "/signup", tok, "name=Ada&email=ada@example.com&password=hunter22&role=seller")
	postForm(t, app, "/cart", tok, "productId=org-001")
	postForm(t, app, "/cart", tok, "productId=note-001")
	getBody(t, app, "/catalog?q=zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")

	cart := st.Cart()
	if len(cart) != 2 || cart[0].ProductID != "org-001" || cart[1].ProductID != "note-001" {
		t.Fatalf("cart lines changed under later requests: %+v", cart)
	}

	// Stacking must still find the original line rather than append.
	postForm(t, app, "/cart", tok, "productId=org-001")
	cart = st.Cart()
	if len(cart) != 2 || cart[0].Qty != 2 {
		t.Fatalf("want org-001 stacked to qty 2, got %+v", cart)
	}

	sess := st.Session()
	if sess == nil || sess.Name != "Ada" || sess.Role != domain.RoleSeller {
		t.Fatalf("session changed under later requests: %+v", sess)
	}
	u, ok := st.UserByEmail("ada@example.com")
	if !ok || u.Name != "Ada" {
		t.Fatalf("stored user changed under later requests: %+v", u)
	}
}
