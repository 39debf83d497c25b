package viking

import "testing"

func TestParseChallenge(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantScheme string
		wantParams map[string]string
		wantErr    bool
	}{
		{
			name:       "oauth realm",
			value:      `OAuth realm="Mobile Vikings"`,
			wantScheme: "OAuth",
			wantParams: map[string]string{"realm": "Mobile Vikings"},
		},
		{
			name:       "multiple params",
			value:      `OAuth realm="Mobile Vikings", oauth_problem="token_expired"`,
			wantScheme: "OAuth",
			wantParams: map[string]string{
				"realm":         "Mobile Vikings",
				"oauth_problem": "token_expired",
			},
		},
		{
			name:       "unquoted value",
			value:      `Digest qop=auth, algorithm=MD5`,
			wantScheme: "Digest",
			wantParams: map[string]string{"qop": "auth", "algorithm": "MD5"},
		},
		{
			name:       "escaped quote",
			value:      `OAuth realm="say \"hi\""`,
			wantScheme: "OAuth",
			wantParams: map[string]string{"realm": `say "hi"`},
		},
		{
			name:       "param name case folded",
			value:      `OAuth Realm="Mobile Vikings"`,
			wantScheme: "OAuth",
			wantParams: map[string]string{"realm": "Mobile Vikings"},
		},
		{
			name:       "scheme only",
			value:      "Basic",
			wantScheme: "Basic",
			wantParams: map[string]string{},
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			value:   `OAuth realm="Mobile Vikings`,
			wantErr: true,
		},
		{
			name:    "parameter without value",
			value:   `OAuth realm`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, params, err := parseChallenge(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if scheme != tt.wantScheme {
				t.Errorf("scheme = %q, want %q", scheme, tt.wantScheme)
			}
			if len(params) != len(tt.wantParams) {
				t.Errorf("params = %v, want %v", params, tt.wantParams)
			}
			for k, want := range tt.wantParams {
				if got := params[k]; got != want {
					t.Errorf("params[%q] = %q, want %q", k, got, want)
				}
			}
		})
	}
}
