package keywords

import "testing"

func TestKeywordNames(t *testing.T) {
	for k := Auto; k < keywordCount; k++ {
		if k.String() == "" {
			t.Fatalf("missing name for keyword %d", k)
		}
		if NewKeyword(k.String()) != k {
			t.Errorf("round trip failed for %s", k)
		}
	}
	if NewKeyword("Bold") != 0 {
		t.Fatal("NewKeyword expects lower case input")
	}
	if NewKeyword("unknown") != 0 {
		t.Fatal("unexpected keyword")
	}
}
