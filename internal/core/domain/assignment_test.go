package domain

import (
	"encoding/json"
	"testing"
)

func TestTestAssignment_Completed(t *testing.T) {
	var tests []TestAssignment
	if err := json.Unmarshal([]byte(`[{"percentage":80},{"percentage":null},{}]`), &tests); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !tests[0].Completed() || *tests[0].Percentage != 80 {
		t.Fatalf("expected first assignment completed with 80, got %+v", tests[0])
	}
	if tests[1].Completed() || tests[2].Completed() {
		t.Fatalf("null and missing percentages must count as not completed")
	}
}
