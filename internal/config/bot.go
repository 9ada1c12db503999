package config

type Bot struct {
	Token string `env:"BOT_TOKEN,required" json:"-"`
	// ChatID is the default chat for announcements when a subscriber id
	// cannot be parsed. Zero disables the fallback.
	ChatID  int64 `env:"BOT_CHAT_ID"`
	AdminID int64 `env:"BOT_ADMIN_ID"`
}
