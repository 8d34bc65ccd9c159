package ingest

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"

	"go.driftline.io/pipeline/pkg/platform/tabular"
)

// frameFromDocuments flattens the documents into a frame. Column order is
// the order of first appearance across documents; fields absent from a
// document become missing values.
func frameFromDocuments(docs []bson.D) (*tabular.Frame, error) {
	var columns []string
	seen := map[string]bool{}
	for _, doc := range docs {
		for _, elem := range doc {
			if !seen[elem.Key] {
				seen[elem.Key] = true
				columns = append(columns, elem.Key)
			}
		}
	}

	frame, err := tabular.New(columns)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		values := make(map[string]string, len(doc))
		for _, elem := range doc {
			values[elem.Key] = formatValue(elem.Value)
		}
		row := make([]string, len(columns))
		for i, c := range columns {
			if v, ok := values[c]; ok {
				row[i] = v
			} else {
				row[i] = tabular.Missing
			}
		}
		if err := frame.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// formatValue renders a document field the way it would appear in a CSV
// cell. Integral floats print without a fraction so round-tripped values
// stay stable.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return tabular.Missing
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bson.ObjectID:
		return val.Hex()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// SplitTrainTest shuffles the frame's rows with the given seed and sends
// ratio of them to the test split, the rest to train. The seed is an
// explicit input so reruns reproduce the same split regardless of call
// order.
func SplitTrainTest(frame *tabular.Frame, ratio float64, seed int64) (*tabular.Frame, *tabular.Frame) {
	n := frame.Rows()
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * ratio)

	testRows := indices[:nTest]
	trainRows := indices[nTest:]
	return frame.Select(trainRows), frame.Select(testRows)
}
