package cart

// Line is one pending menu item in a cart. Price is captured when the line
// is added and is what checkout will snapshot into the order.
type Line struct {
	MenuItemID          string  `json:"menu_item_id"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	ImageURL            string  `json:"image_url"`
	RestaurantID        string  `json:"restaurant_id"`
	RestaurantName      string  `json:"restaurant_name"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// State is a single-restaurant cart. Total and ItemCount are always
// recomputed from Items, never stored independently.
type State struct {
	Items          []Line  `json:"items"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"item_count"`
}

func Empty() State {
	return State{Items: []Line{}}
}

func recompute(s State) State {
	total := 0.0
	count := 0
	for _, line := range s.Items {
		total += line.Price * float64(line.Quantity)
		count += line.Quantity
	}
	s.Total = total
	s.ItemCount = count
	if len(s.Items) == 0 {
		s.RestaurantID = ""
		s.RestaurantName = ""
	}
	return s
}

// CanAddItem reports whether an item from restaurantID may be added.
// Callers should check this first and surface a warning; AddItem's own
// silent reject is only a safety net.
func CanAddItem(s State, restaurantID string) bool {
	return s.RestaurantID == "" || s.RestaurantID == restaurantID
}

// AddItem merges the line into the cart. An item from another restaurant
// leaves the state unchanged; an existing line has its quantity raised.
func AddItem(s State, line Line, quantity int) State {
	if quantity < 1 {
		quantity = 1
	}
	if !CanAddItem(s, line.RestaurantID) {
		return s
	}

	items := make([]Line, len(s.Items))
	copy(items, s.Items)

	merged := false
	for i, existing := range items {
		if existing.MenuItemID == line.MenuItemID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		line.Quantity = quantity
		items = append(items, line)
	}

	s.Items = items
	s.RestaurantID = line.RestaurantID
	s.RestaurantName = line.RestaurantName
	return recompute(s)
}

// RemoveItem drops the matching line; removing the last line clears the
// restaurant binding.
func RemoveItem(s State, menuItemID string) State {
	items := make([]Line, 0, len(s.Items))
	for _, line := range s.Items {
		if line.MenuItemID != menuItemID {
			items = append(items, line)
		}
	}
	s.Items = items
	return recompute(s)
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
func UpdateQuantity(s State, menuItemID string, quantity int) State {
	if quantity <= 0 {
		return RemoveItem(s, menuItemID)
	}
	items := make([]Line, len(s.Items))
	copy(items, s.Items)
	for i, line := range items {
		if line.MenuItemID == menuItemID {
			items[i].Quantity = quantity
		}
	}
	s.Items = items
	return recompute(s)
}

// UpdateInstructions replaces the free-text instructions of one line.
func UpdateInstructions(s State, menuItemID, instructions string) State {
	items := make([]Line, len(s.Items))
	copy(items, s.Items)
	for i, line := range items {
		if line.MenuItemID == menuItemID {
			items[i].SpecialInstructions = instructions
		}
	}
	s.Items = items
	return s
}

func Clear() State {
	return Empty()
}
