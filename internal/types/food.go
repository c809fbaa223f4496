package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FoodItem represents a single food suggestion returned by the language model.
// Image is attached after the list is parsed.
type FoodItem struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	CaloriesPer100g Calories `json:"calories_per_100g"`
	Image           string   `json:"image"`
}

// Calories can handle both number and numeric string values from the model
type Calories float64

func (c *Calories) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*c = Calories(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(str), "kcal"))
		num, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid calories value %q", str)
		}
		*c = Calories(num)
		return nil
	}

	return fmt.Errorf("invalid calories format")
}

// FoodsResponse is the success payload of GET /api/foods
type FoodsResponse struct {
	Foods []FoodItem `json:"foods"`
}
