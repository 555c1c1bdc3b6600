package collection

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Flatten([][]int{{1}, {2, 3}, {}, {4}}))
	assert.Empty(t, Flatten[[]int](nil))
}

func TestFlattenDeep(t *testing.T) {
	nested := []any{1, []any{2, []int{3, 4}, [2]string{"a", "b"}}, []any{}, nil}
	assert.Equal(t, []any{1, 2, 3, 4, "a", "b", nil}, FlattenDeep(nested))
	assert.Equal(t, []any{"single"}, FlattenDeep("single"))
	assert.Empty(t, FlattenDeep(nil))
	assert.NotNil(t, FlattenDeep(nil))
}

func TestZip(t *testing.T) {
	zipped := Zip([]string{"a", "b", "c"}, []string{"1", "2"}, []string{"x", "y", "z"})
	assert.Equal(t, [][]string{{"a", "1", "x"}, {"b", "2", "y"}, {"c", "", "z"}}, zipped)
	assert.Empty(t, Zip[[]int]())
}

type person struct {
	Name string
	Age  int
}

func TestSortBy(t *testing.T) {
	people := []person{
		{Name: "c", Age: 30},
		{Name: "a", Age: 20},
		{Name: "b", Age: 30},
		{Name: "d", Age: 10},
	}
	sorted := SortBy(people, func(p person) int { return p.Age })
	assert.Equal(t, []string{"d", "a", "c", "b"}, Map(sorted, func(p person) string { return p.Name }))
	assert.Equal(t, "c", people[0].Name)
	byName := SortBy(people, func(p person) string { return p.Name })
	assert.Equal(t, []string{"a", "b", "c", "d"}, Pluck(Map(byName, func(p person) map[string]string {
		return map[string]string{"name": p.Name}
	}), "name"))
}

func TestShuffle(t *testing.T) {
	list := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		list = append(list, faker.UUIDHyphenated())
	}
	original := slices.Clone(list)
	shuffled := Shuffle(list)
	assert.Equal(t, original, list)
	assert.ElementsMatch(t, list, shuffled)

	r1 := rand.New(rand.NewPCG(1, 2))
	r2 := rand.New(rand.NewPCG(1, 2))
	assert.Equal(t, ShuffleWith(r1, list), ShuffleWith(r2, list))
	assert.Empty(t, Shuffle([]int{}))
}
