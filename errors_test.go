package goarr

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestIssue_String(t *testing.T) {
	it := Issue{Path: "/records/0/series/title", Code: CodeInvalidType, Message: "expected string", Record: "sonarr.Series", Field: "title", Type: "string"}
	want := "invalid_type at /records/0/series/title (sonarr.Series.title string): expected string"
	if got := it.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	bare := Issue{Path: "/", Code: CodeParseError}
	if got := bare.String(); got != "parse_error at /" {
		t.Fatalf("unexpected bare issue string: %q", got)
	}
}

func TestIssues_ErrorTruncatesListing(t *testing.T) {
	var iss Issues
	for i := 0; i < 5; i++ {
		iss = AppendIssues(iss, Root().Index(i).Issue(CodeRequired, "required"))
	}
	msg := iss.Error()
	if strings.Count(msg, "required at") != 3 || !strings.HasSuffix(msg, "(total 5)") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if Issues(nil).Error() != "" {
		t.Fatalf("expected empty message for no issues")
	}
}

func TestIssues_AsAndHasCode(t *testing.T) {
	base := Issues{{Path: "/status", Code: CodeInvalidEnum, Cause: io.ErrUnexpectedEOF}}
	wrapped := fmt.Errorf("sonarr: queue: %w", base)

	iss, ok := AsIssues(wrapped)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected issues through wrapping, got %v %v", iss, ok)
	}
	if !HasCode(wrapped, CodeInvalidEnum) || HasCode(wrapped, CodeRequired) {
		t.Fatalf("unexpected HasCode results")
	}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
	if _, ok := AsIssues(nil); ok {
		t.Fatalf("nil must not be issues")
	}
	if _, ok := AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not be issues")
	}
}

func TestDeclarationError(t *testing.T) {
	type episode struct{}
	err := fmt.Errorf("register: %w", &DeclarationError{Type: reflect.TypeOf(episode{}), Field: "AirDate", Reason: "unsupported type chan int"})
	if !IsDeclarationError(err) {
		t.Fatalf("expected declaration error")
	}
	if !strings.Contains(err.Error(), "goarr.episode.AirDate: unsupported type chan int") {
		t.Fatalf("unexpected message: %v", err)
	}
	if got := (&DeclarationError{Reason: "nil"}).Error(); got != "goarr: invalid declaration <nil>: nil" {
		t.Fatalf("unexpected message: %q", got)
	}
}
