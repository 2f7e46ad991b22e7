package token

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadConfig reads a tokenizer Config from a TOML file:
//
//	reserved_names = ["let", "if", "else"]
//	comment_line = "//"
//	comment_start = "/*"
//	comment_end = "*/"
//
// Absent keys leave the corresponding feature disabled.
func LoadConfig(filename string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(filename, &cfg); err != nil {
		return Config{}, fmt.Errorf("load tokenizer config: %w", err)
	}
	return cfg, nil
}
