package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("mess@1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "mess@1234" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("mess@1234", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateRandomTokenLength(t *testing.T) {
	tok := GenerateRandomToken(8)
	if len(tok) != 8 {
		t.Errorf("token length = %d, want 8", len(tok))
	}
}
