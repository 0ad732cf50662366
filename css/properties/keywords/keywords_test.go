package keywords

import "testing"

func TestKeywords(t *testing.T) {
	for _, k := range []Keyword{
		Auto, Baseline, Center, FlexEnd, FlexStart, SpaceAround, SpaceBetween, Stretch,
	} {
		if NewKeyword(k.String()) != k {
			t.Fatalf("inconsistent keyword %d", k)
		}
	}
	if NewKeyword("space-evenly") != 0 {
		t.Fatal("unexpected keyword")
	}
}
