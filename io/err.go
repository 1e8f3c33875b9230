package io

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrConsoleClosed = errors.New(f("console has no output"))
)
