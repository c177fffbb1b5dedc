package editdistance

import (
	"math/rand"
	"strings"
	"testing"
)

func trueEdit(s, t string) int {
	n, m := len(s), len(t)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 0
			if s[i-1] != t[j-1] {
				cost = 1
			}
			best := dp[i-1][j-1] + cost
			if v := dp[i-1][j] + 1; v < best {
				best = v
			}
			if v := dp[i][j-1] + 1; v < best {
				best = v
			}
			dp[i][j] = best
		}
	}
	return dp[n][m]
}

func TestIdentity(t *testing.T) {
	if d := Banded([]byte("ACGTACGT"), []byte("ACGTACGT"), 5); d != 0 {
		t.Fatalf("Banded(s,s) = %d, want 0", d)
	}
}

func TestAgreementInBand(t *testing.T) {
	cases := []struct{ s, t string }{
		{"ACGT", "ACGT"},
		{"ACGT", "AXGT"},
		{"ACGT", "ACG"},
		{"ACGT", "ACGTA"},
		{"kitten", "sitting"},
		{"", ""},
		{"", "ABC"},
	}
	for _, c := range cases {
		want := trueEdit(c.s, c.t)
		if want > 10 {
			continue
		}
		if got := Banded([]byte(c.s), []byte(c.t), 10); got != want {
			t.Fatalf("Banded(%q,%q,10) = %d, want %d", c.s, c.t, got, want)
		}
	}
}

func TestOverflowSentinel(t *testing.T) {
	// Whenever the true distance exceeds maxDist, Banded returns a value
	// greater than maxDist (the sentinel maxDist+1).
	s := strings.Repeat("A", 20)
	tt := strings.Repeat("C", 20)
	want := trueEdit(s, tt)
	if want <= 2 {
		t.Fatalf("test fixture invalid: true edit distance %d is not > maxDist", want)
	}
	if got := Banded([]byte(s), []byte(tt), 2); got <= 2 {
		t.Fatalf("Banded = %d, want a value > maxDist (2)", got)
	}

	// When the length difference alone exceeds the band, the dedicated
	// sentinel maxDist+1 is returned exactly.
	if got := Banded([]byte("AAAA"), []byte("AAAAAAAAAAAAAAAA"), 2); got != 3 {
		t.Fatalf("Banded = %d, want sentinel 3 when |n-m| > maxDist", got)
	}
}

func TestSymmetry(t *testing.T) {
	s, t2 := "GATTACA", "GATTCA"
	a := Banded([]byte(s), []byte(t2), 5)
	b := Banded([]byte(t2), []byte(s), 5)
	if a != b {
		t.Fatalf("Banded not symmetric: %d vs %d", a, b)
	}
}

func TestTriangleInequality(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	alphabet := "ACGT"
	rndStr := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rnd.Intn(len(alphabet))])
		}
		return b.String()
	}
	for trial := 0; trial < 30; trial++ {
		a, b, c := rndStr(8), rndStr(8), rndStr(8)
		dab := Banded([]byte(a), []byte(b), 10)
		dbc := Banded([]byte(b), []byte(c), 10)
		dac := Banded([]byte(a), []byte(c), 10)
		if dac > dab+dbc {
			t.Fatalf("triangle inequality violated: d(a,c)=%d > d(a,b)+d(b,c)=%d", dac, dab+dbc)
		}
	}
}

func TestWithinThresholdEarlyReject(t *testing.T) {
	if WithinThreshold([]byte("AAAA"), []byte("AAAAAAAAAA"), 10, 2) {
		t.Fatal("expected early reject on length difference exceeding threshold")
	}
	if !WithinThreshold([]byte("ACGT"), []byte("ACGA"), 10, 1) {
		t.Fatal("expected WithinThreshold true for a single substitution")
	}
}
