package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"A": 1}
	b := map[string]int{"B": 2, "C": 3}

	got := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"A": 1, "B": 2, "C": 3}, got)

	count := 0
	for range Concat2(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	var names, values []string
	for name, value := range Defines(map[string]int{"WORD": 4, "BASE": 4096, "NEG": -1}) {
		names = append(names, name)
		values = append(values, value)
	}
	assert.Equal([]string{"BASE", "NEG", "WORD"}, names)
	assert.Equal([]string{"4096", "-1", "4"}, values)

	count := 0
	for range Defines(map[string]int{"A": 1, "B": 2}) {
		count++
		break
	}
	assert.Equal(1, count)
}
