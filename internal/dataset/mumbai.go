package dataset

import "margdarshak.in/internal/geo"

// Mumbai covers the Mumbai Metro (Lines 1, 2A, 7, 3), the suburban railway
// (Western, Central, Harbour), and the BEST bus network.
var Mumbai = &City{
	Name:         "Mumbai",
	MetroBounds:  geo.Bounds{MinLat: 18.87, MaxLat: 19.32, MinLng: 72.75, MaxLng: 73.05},
	RailBounds:   geo.Bounds{MinLat: 18.87, MaxLat: 19.45, MinLng: 72.75, MaxLng: 73.05},
	BusBounds:    geo.Bounds{MinLat: 18.87, MaxLat: 19.32, MinLng: 72.75, MaxLng: 73.15},
	MetroLines:   mumbaiMetroLines,
	RailLines:    mumbaiRailLines,
	Interchanges: mumbaiMetroInterchanges,
	BusStops:     mumbaiBusStops,
	BusRoutes:    mumbaiBusRoutes,
	SafetyZones:  mumbaiSafetyZones,
}

var mumbaiMetroLines = []*Line{
	{
		ID:        "L1",
		Name:      "Line 1 (Blue)",
		Color:     "#0057a7",
		Frequency: "4-7 min",
		Hours:     "6:00 AM - 10:30 PM",
		Stations: []Station{
			{Name: "Versova", Point: geo.Point{Lat: 19.1312, Lng: 72.8171}},
			{Name: "D N Nagar", Point: geo.Point{Lat: 19.1268, Lng: 72.8276}},
			{Name: "Azad Nagar", Point: geo.Point{Lat: 19.1190, Lng: 72.8365}},
			{Name: "Andheri", Point: geo.Point{Lat: 19.1197, Lng: 72.8464}},
			{Name: "Western Express Highway", Point: geo.Point{Lat: 19.1176, Lng: 72.8570}},
			{Name: "Chakala", Point: geo.Point{Lat: 19.1136, Lng: 72.8618}},
			{Name: "Airport Road", Point: geo.Point{Lat: 19.1103, Lng: 72.8710}},
			{Name: "Marol Naka", Point: geo.Point{Lat: 19.1027, Lng: 72.8794}},
			{Name: "Saki Naka", Point: geo.Point{Lat: 19.0918, Lng: 72.8878}},
			{Name: "Asalpha", Point: geo.Point{Lat: 19.0870, Lng: 72.8895}},
			{Name: "Jagruti Nagar", Point: geo.Point{Lat: 19.0822, Lng: 72.8892}},
			{Name: "Ghatkopar", Point: geo.Point{Lat: 19.0866, Lng: 72.9085}},
		},
	},
	{
		ID:        "L2A",
		Name:      "Line 2A (Yellow)",
		Color:     "#ffd700",
		Frequency: "5-8 min",
		Hours:     "6:30 AM - 10:00 PM",
		Stations: []Station{
			{Name: "Dahisar East", Point: geo.Point{Lat: 19.2568, Lng: 72.8638}},
			{Name: "Anand Nagar", Point: geo.Point{Lat: 19.2410, Lng: 72.8620}},
			{Name: "Ovaripada", Point: geo.Point{Lat: 19.2330, Lng: 72.8596}},
			{Name: "Shimpoli", Point: geo.Point{Lat: 19.2205, Lng: 72.8538}},
			{Name: "Eksar", Point: geo.Point{Lat: 19.2110, Lng: 72.8460}},
			{Name: "Borivali West", Point: geo.Point{Lat: 19.2290, Lng: 72.8568}},
			{Name: "Mandapeshwar", Point: geo.Point{Lat: 19.2000, Lng: 72.8425}},
			{Name: "Dahanukarwadi", Point: geo.Point{Lat: 19.1937, Lng: 72.8396}},
			{Name: "Kandivali West", Point: geo.Point{Lat: 19.2060, Lng: 72.8448}},
			{Name: "Charkop", Point: geo.Point{Lat: 19.2075, Lng: 72.8290}},
			{Name: "Malad West", Point: geo.Point{Lat: 19.1865, Lng: 72.8378}},
			{Name: "Lower Malad", Point: geo.Point{Lat: 19.1810, Lng: 72.8355}},
			{Name: "Goregaon West", Point: geo.Point{Lat: 19.1655, Lng: 72.8380}},
			{Name: "Oshiwara", Point: geo.Point{Lat: 19.1530, Lng: 72.8365}},
			{Name: "Lokhandwala", Point: geo.Point{Lat: 19.1420, Lng: 72.8280}},
			{Name: "Jogeshwari West", Point: geo.Point{Lat: 19.1365, Lng: 72.8320}},
			{Name: "D N Nagar", Point: geo.Point{Lat: 19.1268, Lng: 72.8276}},
		},
	},
	{
		ID:        "L7",
		Name:      "Line 7 (Red)",
		Color:     "#e53935",
		Frequency: "5-8 min",
		Hours:     "6:30 AM - 10:00 PM",
		Stations: []Station{
			{Name: "Dahisar East", Point: geo.Point{Lat: 19.2568, Lng: 72.8680}},
			{Name: "Ovaripada", Point: geo.Point{Lat: 19.2330, Lng: 72.8680}},
			{Name: "Rashtriya Udyan", Point: geo.Point{Lat: 19.2265, Lng: 72.8645}},
			{Name: "Poisar", Point: geo.Point{Lat: 19.2179, Lng: 72.8630}},
			{Name: "Magathane", Point: geo.Point{Lat: 19.2070, Lng: 72.8600}},
			{Name: "Devipada", Point: geo.Point{Lat: 19.1970, Lng: 72.8575}},
			{Name: "Kurar", Point: geo.Point{Lat: 19.1890, Lng: 72.8605}},
			{Name: "Dindoshi", Point: geo.Point{Lat: 19.1780, Lng: 72.8620}},
			{Name: "Pathanwadi", Point: geo.Point{Lat: 19.1690, Lng: 72.8610}},
			{Name: "Goregaon East", Point: geo.Point{Lat: 19.1620, Lng: 72.8620}},
			{Name: "Aarey JVLR", Point: geo.Point{Lat: 19.1510, Lng: 72.8690}},
			{Name: "Mogra", Point: geo.Point{Lat: 19.1330, Lng: 72.8670}},
			{Name: "Andheri East", Point: geo.Point{Lat: 19.1197, Lng: 72.8620}},
		},
	},
	{
		ID:        "L3",
		Name:      "Line 3 (Aqua)",
		Color:     "#00bcd4",
		Frequency: "4-6 min",
		Hours:     "6:00 AM - 11:00 PM",
		Stations: []Station{
			{Name: "Aarey Colony", Point: geo.Point{Lat: 19.1565, Lng: 72.8750}},
			{Name: "SEEPZ", Point: geo.Point{Lat: 19.1290, Lng: 72.8775}},
			{Name: "MIDC", Point: geo.Point{Lat: 19.1233, Lng: 72.8730}},
			{Name: "Marol Naka", Point: geo.Point{Lat: 19.1027, Lng: 72.8794}},
			{Name: "CSIA Domestic", Point: geo.Point{Lat: 19.0960, Lng: 72.8681}},
			{Name: "CSIA International", Point: geo.Point{Lat: 19.0887, Lng: 72.8638}},
			{Name: "Sahar Road", Point: geo.Point{Lat: 19.0850, Lng: 72.8555}},
			{Name: "BKC", Point: geo.Point{Lat: 19.0640, Lng: 72.8660}},
			{Name: "Vidyanagari", Point: geo.Point{Lat: 19.0740, Lng: 72.8570}},
			{Name: "Dharavi", Point: geo.Point{Lat: 19.0440, Lng: 72.8530}},
			{Name: "Dadar", Point: geo.Point{Lat: 19.0176, Lng: 72.8428}},
			{Name: "Worli", Point: geo.Point{Lat: 19.0098, Lng: 72.8165}},
			{Name: "Siddhivinayak", Point: geo.Point{Lat: 19.0168, Lng: 72.8303}},
			{Name: "Science Museum", Point: geo.Point{Lat: 18.9962, Lng: 72.8203}},
			{Name: "Acharya Atre Chowk", Point: geo.Point{Lat: 18.9840, Lng: 72.8162}},
			{Name: "Girgaon", Point: geo.Point{Lat: 18.9585, Lng: 72.8147}},
			{Name: "Grant Road", Point: geo.Point{Lat: 18.9630, Lng: 72.8190}},
			{Name: "Mumbai Central", Point: geo.Point{Lat: 18.9692, Lng: 72.8195}},
			{Name: "Mahalaxmi", Point: geo.Point{Lat: 18.9830, Lng: 72.8178}},
			{Name: "CST", Point: geo.Point{Lat: 18.9400, Lng: 72.8355}},
			{Name: "Cuffe Parade", Point: geo.Point{Lat: 18.9163, Lng: 72.8217}},
		},
	},
}

// Stations shared by multiple metro lines (same name on each line's sequence).
var mumbaiMetroInterchanges = []Interchange{
	{Station: "D N Nagar", LineIDs: []string{"L1", "L2A"}},
	{Station: "Marol Naka", LineIDs: []string{"L1", "L3"}},
	{Station: "Dahisar East", LineIDs: []string{"L2A", "L7"}},
	{Station: "Andheri East", LineIDs: []string{"L7", "L1"}},
}

var mumbaiRailLines = []*Line{
	{
		ID:        "WR",
		Name:      "Western Railway",
		Color:     "#1565c0",
		Frequency: "3-5 min",
		Hours:     "4:00 AM - 1:30 AM",
		Stations: []Station{
			{Name: "Churchgate", Point: geo.Point{Lat: 18.9357, Lng: 72.8273}},
			{Name: "Marine Lines", Point: geo.Point{Lat: 18.9440, Lng: 72.8233}},
			{Name: "Charni Road", Point: geo.Point{Lat: 18.9514, Lng: 72.8194}},
			{Name: "Grant Road", Point: geo.Point{Lat: 18.9630, Lng: 72.8170}},
			{Name: "Mumbai Central", Point: geo.Point{Lat: 18.9694, Lng: 72.8195}},
			{Name: "Mahalaxmi", Point: geo.Point{Lat: 18.9830, Lng: 72.8212}},
			{Name: "Lower Parel", Point: geo.Point{Lat: 18.9930, Lng: 72.8290}},
			{Name: "Elphinstone Road", Point: geo.Point{Lat: 19.0015, Lng: 72.8338}},
			{Name: "Dadar", Point: geo.Point{Lat: 19.0178, Lng: 72.8424}},
			{Name: "Matunga Road", Point: geo.Point{Lat: 19.0274, Lng: 72.8442}},
			{Name: "Mahim Junction", Point: geo.Point{Lat: 19.0395, Lng: 72.8402}},
			{Name: "Bandra", Point: geo.Point{Lat: 19.0544, Lng: 72.8402}},
			{Name: "Khar Road", Point: geo.Point{Lat: 19.0650, Lng: 72.8365}},
			{Name: "Santacruz", Point: geo.Point{Lat: 19.0800, Lng: 72.8386}},
			{Name: "Vile Parle", Point: geo.Point{Lat: 19.0970, Lng: 72.8438}},
			{Name: "Andheri", Point: geo.Point{Lat: 19.1197, Lng: 72.8464}},
			{Name: "Jogeshwari", Point: geo.Point{Lat: 19.1365, Lng: 72.8490}},
			{Name: "Ram Mandir", Point: geo.Point{Lat: 19.1470, Lng: 72.8510}},
			{Name: "Goregaon", Point: geo.Point{Lat: 19.1655, Lng: 72.8490}},
			{Name: "Malad", Point: geo.Point{Lat: 19.1865, Lng: 72.8480}},
			{Name: "Kandivali", Point: geo.Point{Lat: 19.2060, Lng: 72.8530}},
			{Name: "Borivali", Point: geo.Point{Lat: 19.2290, Lng: 72.8568}},
			{Name: "Dahisar", Point: geo.Point{Lat: 19.2505, Lng: 72.8595}},
			{Name: "Mira Road", Point: geo.Point{Lat: 19.2812, Lng: 72.8645}},
			{Name: "Bhayandar", Point: geo.Point{Lat: 19.3010, Lng: 72.8510}},
			{Name: "Naigaon", Point: geo.Point{Lat: 19.3500, Lng: 72.8470}},
			{Name: "Vasai Road", Point: geo.Point{Lat: 19.3665, Lng: 72.8326}},
			{Name: "Nallasopara", Point: geo.Point{Lat: 19.4150, Lng: 72.8180}},
			{Name: "Virar", Point: geo.Point{Lat: 19.4559, Lng: 72.8105}},
		},
	},
	{
		ID:        "CR",
		Name:      "Central Railway",
		Color:     "#d32f2f",
		Frequency: "3-5 min",
		Hours:     "4:00 AM - 1:30 AM",
		Stations: []Station{
			{Name: "CSMT", Point: geo.Point{Lat: 18.9400, Lng: 72.8356}},
			{Name: "Masjid Bunder", Point: geo.Point{Lat: 18.9493, Lng: 72.8397}},
			{Name: "Sandhurst Road", Point: geo.Point{Lat: 18.9580, Lng: 72.8390}},
			{Name: "Byculla", Point: geo.Point{Lat: 18.9780, Lng: 72.8340}},
			{Name: "Chinchpokli", Point: geo.Point{Lat: 18.9870, Lng: 72.8335}},
			{Name: "Currey Road", Point: geo.Point{Lat: 18.9960, Lng: 72.8340}},
			{Name: "Parel", Point: geo.Point{Lat: 19.0050, Lng: 72.8370}},
			{Name: "Dadar", Point: geo.Point{Lat: 19.0178, Lng: 72.8424}},
			{Name: "Matunga", Point: geo.Point{Lat: 19.0274, Lng: 72.8540}},
			{Name: "Sion", Point: geo.Point{Lat: 19.0436, Lng: 72.8618}},
			{Name: "Kurla", Point: geo.Point{Lat: 19.0650, Lng: 72.8790}},
			{Name: "Vidyavihar", Point: geo.Point{Lat: 19.0790, Lng: 72.8880}},
			{Name: "Ghatkopar", Point: geo.Point{Lat: 19.0866, Lng: 72.9085}},
			{Name: "Vikhroli", Point: geo.Point{Lat: 19.1003, Lng: 72.9190}},
			{Name: "Kanjurmarg", Point: geo.Point{Lat: 19.1125, Lng: 72.9290}},
			{Name: "Bhandup", Point: geo.Point{Lat: 19.1310, Lng: 72.9340}},
			{Name: "Nahur", Point: geo.Point{Lat: 19.1410, Lng: 72.9360}},
			{Name: "Mulund", Point: geo.Point{Lat: 19.1722, Lng: 72.9560}},
			{Name: "Thane", Point: geo.Point{Lat: 19.1860, Lng: 72.9753}},
			{Name: "Kalva", Point: geo.Point{Lat: 19.2053, Lng: 73.0095}},
			{Name: "Dombivli", Point: geo.Point{Lat: 19.2200, Lng: 73.0870}},
			{Name: "Kalyan", Point: geo.Point{Lat: 19.2350, Lng: 73.1310}},
		},
	},
	{
		ID:        "HR",
		Name:      "Harbour Line",
		Color:     "#388e3c",
		Frequency: "8-15 min",
		Hours:     "4:30 AM - 12:30 AM",
		Stations: []Station{
			{Name: "CSMT", Point: geo.Point{Lat: 18.9400, Lng: 72.8356}},
			{Name: "Masjid Bunder", Point: geo.Point{Lat: 18.9493, Lng: 72.8397}},
			{Name: "Sandhurst Road", Point: geo.Point{Lat: 18.9580, Lng: 72.8390}},
			{Name: "Dockyard Road", Point: geo.Point{Lat: 18.9610, Lng: 72.8470}},
			{Name: "Reay Road", Point: geo.Point{Lat: 18.9680, Lng: 72.8470}},
			{Name: "Cotton Green", Point: geo.Point{Lat: 18.9800, Lng: 72.8490}},
			{Name: "Sewri", Point: geo.Point{Lat: 18.9920, Lng: 72.8530}},
			{Name: "Vadala Road", Point: geo.Point{Lat: 19.0080, Lng: 72.8570}},
			{Name: "King's Circle", Point: geo.Point{Lat: 19.0250, Lng: 72.8580}},
			{Name: "Mahim Junction", Point: geo.Point{Lat: 19.0395, Lng: 72.8402}},
			{Name: "Bandra", Point: geo.Point{Lat: 19.0544, Lng: 72.8402}},
			{Name: "Khar Road", Point: geo.Point{Lat: 19.0650, Lng: 72.8365}},
			{Name: "Santacruz", Point: geo.Point{Lat: 19.0800, Lng: 72.8386}},
			{Name: "Vile Parle", Point: geo.Point{Lat: 19.0970, Lng: 72.8438}},
			{Name: "Andheri", Point: geo.Point{Lat: 19.1197, Lng: 72.8464}},
		},
	},
}
