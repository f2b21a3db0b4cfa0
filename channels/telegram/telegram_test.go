package telegram

import (
	"os"
	"testing"

	"gopkg.in/h2non/gock.v1"
)

func TestInit_Disabled(t *testing.T) {
	os.Unsetenv("TELEGRAM_TOKEN")
	bot = nil

	if err := Init(); err != nil {
		t.Fatalf("Init() without token error = %v, want nil", err)
	}
	if Enabled() {
		t.Error("Enabled() = true without token")
	}

	// must be a no-op, not a panic
	NotifyLockout("user1")
}

func TestInit_BadChatID(t *testing.T) {
	os.Setenv("TELEGRAM_TOKEN", "TESTTOKEN")
	os.Setenv("TELEGRAM_ALERT_CHAT", "not-a-number")
	bot = nil

	if err := Init(); err == nil {
		t.Error("Init() with bad chat id error = nil, want error")
	}
}

func TestNotifyLockout(t *testing.T) {
	defer gock.Off()

	os.Setenv("TELEGRAM_TOKEN", "TESTTOKEN")
	os.Setenv("TELEGRAM_ALERT_CHAT", "42")
	bot = nil

	gock.New("https://api.telegram.org").
		Post("/botTESTTOKEN/getMe").
		Reply(200).
		JSON(map[string]interface{}{
			"ok": true,
			"result": map[string]interface{}{
				"id":         1,
				"is_bot":     true,
				"first_name": "atm",
				"username":   "atm_alert_bot",
			},
		})

	gock.New("https://api.telegram.org").
		Post("/botTESTTOKEN/sendMessage").
		Reply(200).
		JSON(map[string]interface{}{
			"ok": true,
			"result": map[string]interface{}{
				"message_id": 1,
				"date":       1,
				"text":       "Account \"user1\" has been locked after 3 failed PIN attempts.",
				"chat":       map[string]interface{}{"id": 42},
			},
		})

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Init with token")
	}

	NotifyLockout("user1")

	if !gock.IsDone() {
		t.Error("not all Telegram calls were made")
	}
}
