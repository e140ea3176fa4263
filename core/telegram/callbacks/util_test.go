package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		data        string
		wantKey     string
		wantPayload string
	}{
		{"\fadm_page|2", "adm_page", "2"},
		{"\fstart_flow", "start_flow", ""},
		{"q1_food", "q1_food", ""},
		{"\fadm_page|", "adm_page", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		key, payload := ParseCallbackData(&tele.Callback{Data: tc.data})
		if key != tc.wantKey || payload != tc.wantPayload {
			t.Fatalf("parse(%q) = (%q, %q), want (%q, %q)", tc.data, key, payload, tc.wantKey, tc.wantPayload)
		}
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	key, payload := ParseCallbackData(nil)
	if key != "" || payload != "" {
		t.Fatalf("parse(nil) = (%q, %q), want empty", key, payload)
	}
}
