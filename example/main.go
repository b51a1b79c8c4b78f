package main

import (
	"github.com/sbnative/sbnative/pkg/debug"
	"github.com/sbnative/sbnative/pkg/geometrics"
	"github.com/sbnative/sbnative/pkg/linebreak"
	"github.com/sbnative/sbnative/pkg/repr"
)

type secondExample struct {
	withAnAttribute string
}

func (s secondExample) Describe() repr.Description {
	return repr.Description{
		Type:   "SecondExCls",
		Fields: linebreak.Named{{Name: "withAnAttribute", Value: s.withAnAttribute}},
	}
}

type example struct {
	withSomeAttr  string
	another1      string
	andALastOne   string
	secondExample secondExample
}

func (e example) Describe() repr.Description {
	return repr.Description{
		Type: "ExampleClass",
		Fields: linebreak.Named{
			{Name: "withSomeAttr", Value: e.withSomeAttr},
			{Name: "another1", Value: e.another1},
			{Name: "andALastOne", Value: e.andALastOne},
			{Name: "secondExample", Value: e.secondExample},
		},
	}
}

func main() {
	defer debug.Default().Close()

	debug.Log(example{
		withSomeAttr:  "something something",
		another1:      "something something something something something something",
		andALastOne:   "something something something something something something something something",
		secondExample: secondExample{withAnAttribute: "that is a string of second ex cls"},
	})

	debug.LogKV(
		[]any{"some_str", 123, 876543, 2134566.987654, 12345, 765433, 435678, 9876543,
			3435465, 987658765, 87654329876543, 8765432897654, 1234567890},
		linebreak.Named{{Name: "andSomeKwarg", Value: 1234}},
	)
	debug.LogKV([]any{"some_str", 123, 876543}, linebreak.Named{{Name: "andSomeKwarg", Value: 1234}})

	debug.ILog("a point", geometrics.NewPoint(1, 2, 3))

	debug.ToggleStacking()
	for range 5 {
		debug.Log("repeated")
	}
	debug.ToggleStacking()

	debug.Timer(nil, "sum", func() int {
		total := 0
		for i := range 1_000_000 {
			total += i
		}
		return total
	})
}
