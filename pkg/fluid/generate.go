package fluid

//go:generate go run github.com/dmitrymomot/fluid/cmd/fluid build --base-dir ../.. --output pkg/fluid/dict.bin
