package testutils

import (
	"reflect"
	"strings"
	"testing"
)

// AssertEqual fails the test if `got` and `exp` are not deeply equal.
// The optional `context` is added to the failure message.
func AssertEqual(t *testing.T, got, exp interface{}, context ...string) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("%s: expected\n%v\n got \n%v", strings.Join(context, " "), exp, got)
	}
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}
