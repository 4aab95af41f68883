package simulate

import (
	"math"
)

// Preprocess cleans the readings of one patient. rows holds one row per
// time step and one column per feature; NaN marks a missing value.
//
// Each column is imputed by linear interpolation, readings with |z| above
// outlierZ are dropped and imputed again, and the column is finally scaled
// to zero mean and unit variance. A column without variance, or without any
// value, becomes zeros. rows is left untouched.
func Preprocess(rows [][]float64, outlierZ float64) ([][]float64, error) {
	if math.IsNaN(outlierZ) || outlierZ <= 0 {
		return nil, &ParameterError{"outlier_z", outlierZ, "must be a positive number"}
	}
	if len(rows) == 0 {
		return [][]float64{}, nil
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &ParameterError{"rows", i, "every row must have the same number of features"}
		}
	}

	columns := make([][]float64, width)
	for f := range columns {
		col := make([]float64, len(rows))
		for t, row := range rows {
			col[t] = row[f]
		}

		interpolate(col)
		if removeOutliers(col, outlierZ) {
			interpolate(col)
		}
		normalize(col)

		columns[f] = col
	}

	cleaned := make([][]float64, len(rows))
	for t := range cleaned {
		cleaned[t] = make([]float64, width)
		for f := range columns {
			cleaned[t][f] = columns[f][t]
		}
	}
	return cleaned, nil
}

// interpolate fills gaps between known values on a straight line and
// repeats the nearest known value at both ends.
func interpolate(col []float64) {
	prev := -1
	for i, v := range col {
		if math.IsNaN(v) {
			continue
		}
		if prev == -1 {
			for j := 0; j < i; j++ {
				col[j] = v
			}
		} else {
			for j := prev + 1; j < i; j++ {
				t := float64(j-prev) / float64(i-prev)
				col[j] = col[prev] + t*(v-col[prev])
			}
		}
		prev = i
	}

	if prev == -1 {
		return
	}
	for j := prev + 1; j < len(col); j++ {
		col[j] = col[prev]
	}
}

// meanStd returns the mean and the sample standard deviation of the known
// values, and how many there are.
func meanStd(col []float64) (float64, float64, int) {
	var sum float64
	n := 0
	for _, v := range col {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0
	}
	mean := sum / float64(n)
	if n < 2 {
		return mean, 0, n
	}

	var squares float64
	for _, v := range col {
		if !math.IsNaN(v) {
			squares += (v - mean) * (v - mean)
		}
	}
	return mean, math.Sqrt(squares / float64(n-1)), n
}

// removeOutliers marks values with |z| > limit as missing and reports
// whether it marked any.
func removeOutliers(col []float64, limit float64) bool {
	mean, std, _ := meanStd(col)
	if std == 0 {
		return false
	}

	removed := false
	for i, v := range col {
		if math.Abs((v-mean)/std) > limit {
			col[i] = math.NaN()
			removed = true
		}
	}
	return removed
}

func normalize(col []float64) {
	mean, std, n := meanStd(col)
	for i, v := range col {
		if n == 0 || std == 0 || math.IsNaN(v) {
			col[i] = 0
			continue
		}
		col[i] = (v - mean) / std
	}
}
