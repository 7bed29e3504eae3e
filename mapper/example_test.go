package mapper_test

import (
	"fmt"

	"magic-mapper/mapper"
)

func Example() {
	data := []any{
		map[string]any{"person": map[string]any{"name": "foo1"}},
		map[string]any{"person": map[string]any{"name": "foo2"}},
	}
	schema := mapper.Fields{
		"names": mapper.Schema(mapper.Fields{
			"name": mapper.Value("person").Then(mapper.Value("name")),
		}),
	}

	out, err := mapper.Map(schema, data, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// map[names:[map[name:foo1] map[name:foo2]]]
}

func ExampleVariable() {
	data := map[string]any{"foo": map[string]any{"bar": []any{
		map[string]any{"name": "foo1"},
		map[string]any{"name": "foo2"},
	}}}
	schema := mapper.Fields{
		"names": mapper.Variable("testvar").
			Then(mapper.List("bar", mapper.MinLength(1))).
			Then(mapper.Schema(mapper.Fields{"name": mapper.Value("name")})),
	}

	out, err := mapper.Map(schema, data, mapper.Variables{"testvar": mapper.Value("foo")})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// map[names:[map[name:foo1] map[name:foo2]]]
}

func ExampleList() {
	data := map[string]any{"devices": []any{
		map[string]any{"name": "notinterested", "data": []any{map[string]any{"value": 1}}},
		map[string]any{"name": "notinterested2", "data": []any{map[string]any{"value": 2}}},
	}}
	values := mapper.Reduce(
		func(acc, device any) (any, error) {
			out := acc.([]any)
			for _, v := range device.(map[string]any)["data"].([]any) {
				out = append(out, v.(map[string]any)["value"])
			}
			return out, nil
		},
		func() any { return []any{} },
	)

	out, err := mapper.Map(mapper.Fields{"values": mapper.List("devices", values)}, data, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// map[values:[1 2]]
}
