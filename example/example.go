package example

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

//go:generate go-catchall
// UUIDEnum demonstrates a catch-all parsed with encoding.TextUnmarshaler
// @catchall UUIDEnum rename_all=SCREAMING_SNAKE_CASE completion=true
type _ interface {
	One()
	Two(uuid.UUID)
}

//go:generate go-catchall
// StringEnum demonstrates a catch-all that accepts any string
// @catchall StringEnum
type _ interface {
	One()
	Two(string)
}

//go:generate go-catchall
// U32Enum demonstrates a catch-all parsed with strconv
// @catchall U32Enum
type _ interface {
	One()
	Two(uint32)
}

//go:generate go-catchall
// Timeout demonstrates renamed, case-insensitive variants
// @catchall Timeout rename_all=kebab-case ignore_case=true completion=true
type _ interface {
	Never()
	UntilIdle() // @catchall name=idle
	After(d time.Duration) // @catchall placeholder=timeout
}

//go:generate go-catchall
// Deadline demonstrates a catch-all formatted with encoding.TextMarshaler
// @catchall Deadline rename_all=lowercase
type _ interface {
	None()
	At(time.Time) // @catchall placeholder=rfc3339
}

//go:generate go-catchall
// Budget demonstrates a catch-all whose text methods have pointer receivers
// @catchall Budget rename_all=lowercase
type _ interface {
	Unlimited()
	Exactly(big.Int) // @catchall placeholder=amount
}
