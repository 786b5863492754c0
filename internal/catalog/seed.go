package catalog

import "estate-search/internal/model"

// Seed returns the built-in raw catalog used when no external source is
// configured. The records deliberately vary their field names (type vs
// property_type, price vs price_min/price_max) the way real ingested data
// does, so the normalizer is exercised on every startup.
func Seed() []model.RawListing {
	return []model.RawListing{
		{
			"id": 1, "name": "Raheja Mindspace", "city": "Hyderabad", "location": "Madhapur",
			"price_min": 4e6, "price_max": 2.5e7, "property_type": "Apartments",
			"bedrooms": "Office", "amenities": "IT Park, Security", "developer": "Raheja",
			"possession_date": "2024", "description": "Tech park apartments",
		},
		{
			"id": 2, "name": "Lodha World Towers", "city": "Mumbai", "location": "Mahalaxmi",
			"price_min": 2.5e7, "price_max": 5e7, "property_type": "Apartments",
			"bedrooms": "3-5 BHK", "amenities": "Pool, Gym", "developer": "Lodha",
			"possession_date": "2024", "description": "Luxury apartments",
		},
		{
			"id": 3, "name": "Godrej Aqua", "city": "Mumbai", "location": "Vikhroli",
			"price_min": 1.8e7, "price_max": 4e7, "property_type": "Apartments",
			"bedrooms": "2-4 BHK", "amenities": "Garden, Club", "developer": "Godrej",
			"possession_date": "2024", "description": "Premium apartments",
		},
		{
			"id": 4, "name": "Sobha Hartland", "city": "Bangalore", "location": "Whitefield",
			"price_min": 8e6, "price_max": 2.5e7, "property_type": "Apartments",
			"bedrooms": "2-4 BHK", "amenities": "Lake, School", "developer": "Sobha",
			"possession_date": "2024", "description": "Residential township",
		},
		{
			"id": 5, "name": "DLF Villas", "city": "Goa", "location": "Panaji",
			"price_min": 3e7, "price_max": 6e7, "property_type": "Villas",
			"bedrooms": "4-5 BHK", "amenities": "Beach, Pool", "developer": "DLF",
			"possession_date": "2025", "description": "Luxury beach villas",
		},
		{
			"id": 6, "name": "Prestige Bayview", "city": "Chennai", "location": "OMR",
			"price_min": 9e6, "price_max": 2.2e7, "property_type": "Apartments",
			"bedrooms": "2-3 BHK", "amenities": "Sea View, Gym", "developer": "Prestige",
			"possession_date": "2025", "description": "Sea-facing apartments",
		},
		{
			"id": 7, "name": "DLF Cyber Residency", "city": "Delhi", "location": "Gurgaon",
			"price_min": 1.2e7, "price_max": 3e7, "property_type": "Apartments",
			"bedrooms": "3-4 BHK", "amenities": "Club, Metro", "developer": "DLF",
			"possession_date": "2025", "description": "Premium NCR apartments",
		},
		{
			// Older export shape: single price, "type" instead of
			// "property_type".
			"id": 8, "name": "Kolte Patil Life Republic", "city": "Pune", "location": "Hinjewadi",
			"price": 6e6, "type": "Residential House",
			"bedrooms": "1-3 BHK", "amenities": "Park, School", "developer": "Kolte Patil",
			"possession_date": "2026", "description": "Residential township houses",
		},
		{
			"id": 9, "name": "WaveRock Offices", "city": "Hyderabad", "location": "Gachibowli",
			"price": 5e7, "type": "Commercial Office",
			"bedrooms": "10000-50000 sqft", "amenities": "Food Court, Parking", "developer": "Tishman",
			"possession_date": "2024", "description": "Grade A office space",
		},
	}
}
