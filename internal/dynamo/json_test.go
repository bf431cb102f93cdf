package dynamo

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSeriesJSONNonFinite(t *testing.T) {
	s := Series{1.5, math.NaN(), math.Inf(1), -2}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "[1.5,null,null,-2]" {
		t.Errorf("unexpected encoding %s", data)
	}

	var back Series
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(back) != 4 || back[0] != 1.5 || !math.IsNaN(back[1]) || !math.IsNaN(back[2]) || back[3] != -2 {
		t.Errorf("unexpected decoding %v", back)
	}
}

func TestSeriesJSONInStruct(t *testing.T) {
	type wrapper struct {
		Values Series `json:"values"`
	}
	data, err := json.Marshal(wrapper{Values: Series{math.NaN()}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"values":[null]}` {
		t.Errorf("unexpected encoding %s", data)
	}
}
