package lutris

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Foo", "foo"},
		{"Foo Bar", "foo-bar"},
		{"Foo: Bar's Quest™", "foo-bars-quest"},
		{"Tomb Raider I-III Remastered", "tomb-raider-i-iii-remastered"},
		{"S.T.A.L.K.E.R.", "stalker"},
		{"Ori & The Blind Forest", "ori-and-the-blind-forest"},
		{"Portal®", "portal"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Slug(c.title); got != c.want {
			t.Errorf("Slug(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestSlugDeterministic(t *testing.T) {
	title := "Baldur's Gate 3"
	first := Slug(title)
	for i := 0; i < 10; i++ {
		if got := Slug(title); got != first {
			t.Fatalf("Slug not deterministic: %q vs %q", got, first)
		}
	}
}
