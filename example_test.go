package srs_test

import (
	"fmt"
	"time"

	"github.com/relaykit/srs"
)

func exampleEngine() *srs.Engine {
	// A fixed clock keeps the timestamp field stable for the examples.
	e, err := srs.New("aSecretKey",
		srs.WithLifetime(7*24*time.Hour),
		srs.WithNow(func() time.Time { return time.Unix(1750000000, 0).UTC() }))
	if err != nil {
		panic(err)
	}
	return e
}

func ExampleEngine_Forward() {
	e := exampleEngine()

	wrapped, err := e.Forward("user@example.com", "srs.forward.com")
	if err != nil {
		panic(err)
	}
	fmt.Println(wrapped)
	// Output: SRS0=jA9R=Y6=example.com=user@srs.forward.com
}

func ExampleEngine_Reverse() {
	e := exampleEngine()

	original, err := e.Reverse("SRS0=ixj4=Y6=example.com=user2@srs.forward.com")
	if err != nil {
		panic(err)
	}
	fmt.Println(original)
	// Output: user2@example.com
}

func ExampleAsSourceAddress() {
	src, err := srs.AsSourceAddress("SRS0=jA9R=Y6=example.com=user@srs.forward.com")
	if err != nil {
		panic(err)
	}
	fmt.Println(src)
	// Output: user@example.com
}
