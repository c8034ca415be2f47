package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetToken(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	testToken := "tok_c2f1d3e4"

	if err := SetToken(testToken); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	retrieved, err := GetToken()
	if err != nil {
		t.Fatalf("GetToken() failed: %v", err)
	}

	if retrieved != testToken {
		t.Errorf("GetToken() = %q, want %q", retrieved, testToken)
	}
}

func TestSetTokenEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken(""); err == nil {
		t.Error("SetToken(\"\") should return an error")
	}
}

func TestGetTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeleteToken()

	if _, err := GetToken(); err != ErrNotFound {
		t.Errorf("GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken("tok_to_delete"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	if err := DeleteToken(); err != nil {
		t.Fatalf("DeleteToken() failed: %v", err)
	}

	if _, err := GetToken(); err != ErrNotFound {
		t.Errorf("after delete, GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteToken()

	if err := DeleteToken(); err != ErrNotFound {
		t.Errorf("DeleteToken() on empty keyring = %v, want %v", err, ErrNotFound)
	}
}
