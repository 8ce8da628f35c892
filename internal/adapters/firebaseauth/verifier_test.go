package firebaseauth

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"

	"hotel_booking/internal/domain"
)

type fakeTokens map[string]*auth.Token

func (f fakeTokens) VerifyIDToken(_ context.Context, tok string) (*auth.Token, error) {
	if t, ok := f[tok]; ok {
		return t, nil
	}
	return nil, errors.New("ID token has invalid signature")
}

func TestVerifier_Verify(t *testing.T) {
	v := &Verifier{client: fakeTokens{
		"good":    {UID: "u-1", Claims: map[string]interface{}{"email": "ana@example.com"}},
		"noemail": {UID: "u-2", Claims: map[string]interface{}{}},
	}}
	ctx := context.Background()

	u, err := v.Verify(ctx, "good")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if u.ID != "u-1" || u.Email != "ana@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	u, err = v.Verify(ctx, "noemail")
	if err != nil || u.ID != "u-2" || u.Email != "" {
		t.Fatalf("unexpected: %+v %v", u, err)
	}

	for _, tok := range []string{"", "forged"} {
		if _, err := v.Verify(ctx, tok); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("token %q: expected ErrUnauthenticated, got %v", tok, err)
		}
	}
}
