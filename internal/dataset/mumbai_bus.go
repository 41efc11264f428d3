package dataset

import "margdarshak.in/internal/geo"

// Major BEST stops across Mumbai, tagged by area cluster.
var mumbaiBusStops = []BusStop{
	// South Mumbai
	{Name: "CSMT Bus Station", Point: geo.Point{Lat: 18.9398, Lng: 72.8354}, Area: "fort"},
	{Name: "Flora Fountain", Point: geo.Point{Lat: 18.9337, Lng: 72.8310}, Area: "fort"},
	{Name: "Churchgate Station", Point: geo.Point{Lat: 18.9352, Lng: 72.8272}, Area: "churchgate"},
	{Name: "Marine Lines Station", Point: geo.Point{Lat: 18.9438, Lng: 72.8234}, Area: "marine_lines"},
	{Name: "Chowpatty", Point: geo.Point{Lat: 18.9543, Lng: 72.8140}, Area: "chowpatty"},
	{Name: "Colaba Bus Station", Point: geo.Point{Lat: 18.9067, Lng: 72.8147}, Area: "colaba"},
	{Name: "Nariman Point", Point: geo.Point{Lat: 18.9255, Lng: 72.8242}, Area: "nariman_point"},
	{Name: "Mantralaya", Point: geo.Point{Lat: 18.9264, Lng: 72.8213}, Area: "nariman_point"},
	{Name: "Cuffe Parade Depot", Point: geo.Point{Lat: 18.9167, Lng: 72.8205}, Area: "cuffe_parade"},
	{Name: "Regal Cinema", Point: geo.Point{Lat: 18.9273, Lng: 72.8316}, Area: "colaba"},
	{Name: "Gateway of India", Point: geo.Point{Lat: 18.9220, Lng: 72.8347}, Area: "colaba"},

	// Central Mumbai
	{Name: "Dadar TT", Point: geo.Point{Lat: 19.0176, Lng: 72.8428}, Area: "dadar"},
	{Name: "Dadar Station East", Point: geo.Point{Lat: 19.0183, Lng: 72.8453}, Area: "dadar"},
	{Name: "Siddhivinayak Temple", Point: geo.Point{Lat: 19.0168, Lng: 72.8303}, Area: "prabhadevi"},
	{Name: "Worli Naka", Point: geo.Point{Lat: 19.0048, Lng: 72.8178}, Area: "worli"},
	{Name: "Worli Sea Face", Point: geo.Point{Lat: 19.0005, Lng: 72.8140}, Area: "worli"},
	{Name: "Haji Ali", Point: geo.Point{Lat: 18.9828, Lng: 72.8120}, Area: "haji_ali"},
	{Name: "Mahalaxmi Station", Point: geo.Point{Lat: 18.9830, Lng: 72.8178}, Area: "mahalaxmi"},
	{Name: "Mumbai Central Depot", Point: geo.Point{Lat: 18.9700, Lng: 72.8190}, Area: "mumbai_central"},
	{Name: "Grant Road Station", Point: geo.Point{Lat: 18.9630, Lng: 72.8190}, Area: "grant_road"},
	{Name: "Byculla Station", Point: geo.Point{Lat: 18.9780, Lng: 72.8340}, Area: "byculla"},
	{Name: "Lalbaug", Point: geo.Point{Lat: 18.9930, Lng: 72.8370}, Area: "lalbaug"},
	{Name: "Parel Station", Point: geo.Point{Lat: 19.0060, Lng: 72.8420}, Area: "parel"},
	{Name: "Sion Station", Point: geo.Point{Lat: 19.0444, Lng: 72.8623}, Area: "sion"},
	{Name: "Dharavi Bus Stop", Point: geo.Point{Lat: 19.0440, Lng: 72.8530}, Area: "dharavi"},
	{Name: "Mahim Bus Depot", Point: geo.Point{Lat: 19.0350, Lng: 72.8400}, Area: "mahim"},
	{Name: "King Circle", Point: geo.Point{Lat: 19.0320, Lng: 72.8570}, Area: "matunga"},

	// Western suburbs
	{Name: "Bandra Station West", Point: geo.Point{Lat: 19.0544, Lng: 72.8402}, Area: "bandra"},
	{Name: "Bandra Bus Station", Point: geo.Point{Lat: 19.0553, Lng: 72.8367}, Area: "bandra"},
	{Name: "BKC Bus Stop", Point: geo.Point{Lat: 19.0640, Lng: 72.8660}, Area: "bkc"},
	{Name: "Khar Station West", Point: geo.Point{Lat: 19.0712, Lng: 72.8372}, Area: "khar"},
	{Name: "Santacruz Station West", Point: geo.Point{Lat: 19.0830, Lng: 72.8380}, Area: "santacruz"},
	{Name: "Vile Parle Station West", Point: geo.Point{Lat: 19.0980, Lng: 72.8440}, Area: "vile_parle"},
	{Name: "Vile Parle Station East", Point: geo.Point{Lat: 19.0968, Lng: 72.8490}, Area: "vile_parle"},
	{Name: "Andheri Station West", Point: geo.Point{Lat: 19.1197, Lng: 72.8464}, Area: "andheri"},
	{Name: "Andheri Station East", Point: geo.Point{Lat: 19.1190, Lng: 72.8530}, Area: "andheri"},
	{Name: "DN Nagar Bus Stop", Point: geo.Point{Lat: 19.1268, Lng: 72.8276}, Area: "andheri"},
	{Name: "Lokhandwala Circle", Point: geo.Point{Lat: 19.1370, Lng: 72.8280}, Area: "andheri"},
	{Name: "Oshiwara Bus Depot", Point: geo.Point{Lat: 19.1530, Lng: 72.8365}, Area: "oshiwara"},
	{Name: "Jogeshwari Station West", Point: geo.Point{Lat: 19.1365, Lng: 72.8320}, Area: "jogeshwari"},
	{Name: "Goregaon Station West", Point: geo.Point{Lat: 19.1655, Lng: 72.8480}, Area: "goregaon"},
	{Name: "Goregaon Bus Depot", Point: geo.Point{Lat: 19.1620, Lng: 72.8530}, Area: "goregaon"},
	{Name: "Malad Station West", Point: geo.Point{Lat: 19.1865, Lng: 72.8450}, Area: "malad"},
	{Name: "Malad Station East", Point: geo.Point{Lat: 19.1860, Lng: 72.8510}, Area: "malad"},
	{Name: "Kandivali Station West", Point: geo.Point{Lat: 19.2060, Lng: 72.8480}, Area: "kandivali"},
	{Name: "Kandivali Station East", Point: geo.Point{Lat: 19.2050, Lng: 72.8570}, Area: "kandivali"},
	{Name: "Borivali Station West", Point: geo.Point{Lat: 19.2290, Lng: 72.8568}, Area: "borivali"},
	{Name: "Borivali Bus Depot", Point: geo.Point{Lat: 19.2305, Lng: 72.8530}, Area: "borivali"},
	{Name: "Dahisar Bus Stand", Point: geo.Point{Lat: 19.2568, Lng: 72.8638}, Area: "dahisar"},

	// Eastern suburbs
	{Name: "Kurla Station West", Point: geo.Point{Lat: 19.0728, Lng: 72.8788}, Area: "kurla"},
	{Name: "Kurla Bus Depot", Point: geo.Point{Lat: 19.0700, Lng: 72.8820}, Area: "kurla"},
	{Name: "Ghatkopar Station West", Point: geo.Point{Lat: 19.0866, Lng: 72.9085}, Area: "ghatkopar"},
	{Name: "Ghatkopar Bus Depot", Point: geo.Point{Lat: 19.0845, Lng: 72.9100}, Area: "ghatkopar"},
	{Name: "Vikhroli Station", Point: geo.Point{Lat: 19.1060, Lng: 72.9262}, Area: "vikhroli"},
	{Name: "Powai Lake", Point: geo.Point{Lat: 19.1249, Lng: 72.9058}, Area: "powai"},
	{Name: "Hiranandani Powai", Point: geo.Point{Lat: 19.1190, Lng: 72.9090}, Area: "powai"},
	{Name: "Mulund Station West", Point: geo.Point{Lat: 19.1727, Lng: 72.9565}, Area: "mulund"},
	{Name: "Mulund Check Naka", Point: geo.Point{Lat: 19.1760, Lng: 72.9430}, Area: "mulund"},
	{Name: "Thane Station", Point: geo.Point{Lat: 19.1860, Lng: 72.9752}, Area: "thane"},
	{Name: "Bhandup Station", Point: geo.Point{Lat: 19.1506, Lng: 72.9374}, Area: "bhandup"},

	// Harbour / Navi Mumbai
	{Name: "Chembur Bus Depot", Point: geo.Point{Lat: 19.0621, Lng: 72.8973}, Area: "chembur"},
	{Name: "Mankhurd Station", Point: geo.Point{Lat: 19.0510, Lng: 72.9310}, Area: "mankhurd"},
	{Name: "Vashi Bus Station", Point: geo.Point{Lat: 19.0763, Lng: 72.9988}, Area: "vashi"},
	{Name: "Nerul Station", Point: geo.Point{Lat: 19.0330, Lng: 73.0162}, Area: "nerul"},
	{Name: "Belapur CBD Station", Point: geo.Point{Lat: 19.0230, Lng: 73.0370}, Area: "belapur"},
	{Name: "Panvel Bus Station", Point: geo.Point{Lat: 18.9935, Lng: 73.1190}, Area: "panvel"},

	// Airport / MIDC
	{Name: "Airport Gate No 1", Point: geo.Point{Lat: 19.0990, Lng: 72.8640}, Area: "airport"},
	{Name: "MIDC Bus Stop", Point: geo.Point{Lat: 19.1233, Lng: 72.8730}, Area: "midc"},
	{Name: "SEEPZ Gate", Point: geo.Point{Lat: 19.1290, Lng: 72.8775}, Area: "seepz"},
	{Name: "Marol Maroshi Road", Point: geo.Point{Lat: 19.1100, Lng: 72.8790}, Area: "marol"},
	{Name: "Saki Naka Junction", Point: geo.Point{Lat: 19.0918, Lng: 72.8878}, Area: "saki_naka"},
	{Name: "Chakala Junction", Point: geo.Point{Lat: 19.1136, Lng: 72.8618}, Area: "chakala"},
}

// Known BEST route numbers between area clusters.
var mumbaiBusRoutes = []BusRoutePattern{
	{Routes: "1 / 3", From: "colaba", To: "byculla"},
	{Routes: "1Ltd", From: "colaba", To: "dadar"},
	{Routes: "3Ltd", From: "colaba", To: "worli"},
	{Routes: "6", From: "fort", To: "haji_ali"},
	{Routes: "22Ltd", From: "fort", To: "sion"},
	{Routes: "25Ltd", From: "fort", To: "parel"},
	{Routes: "63", From: "dadar", To: "goregaon"},
	{Routes: "65 / 66", From: "dadar", To: "andheri"},
	{Routes: "70 / 72", From: "dadar", To: "bandra"},
	{Routes: "79 / 79Ltd", From: "dharavi", To: "kurla"},
	{Routes: "83", From: "bandra", To: "andheri"},
	{Routes: "203", From: "bandra", To: "kurla"},
	{Routes: "212 / 214", From: "kurla", To: "ghatkopar"},
	{Routes: "248 / 250", From: "andheri", To: "borivali"},
	{Routes: "252 / 256", From: "andheri", To: "goregaon"},
	{Routes: "260", From: "andheri", To: "malad"},
	{Routes: "271", From: "andheri", To: "oshiwara"},
	{Routes: "332", From: "malad", To: "kandivali"},
	{Routes: "340 / 342", From: "kandivali", To: "borivali"},
	{Routes: "355 / 356", From: "borivali", To: "dahisar"},
	{Routes: "460 / 462", From: "ghatkopar", To: "mulund"},
	{Routes: "500 / 501", From: "kurla", To: "chembur"},
	{Routes: "506", From: "sion", To: "chembur"},
	{Routes: "C-49", From: "bkc", To: "kurla"},
	{Routes: "A-31", From: "bandra", To: "bkc"},
	{Routes: "AC-24", From: "vile_parle", To: "bkc"},
	{Routes: "305", From: "goregaon", To: "malad"},
	{Routes: "386", From: "malad", To: "goregaon"},
	{Routes: "401", From: "bhandup", To: "mulund"},
	{Routes: "485", From: "ghatkopar", To: "powai"},
	{Routes: "495", From: "vikhroli", To: "powai"},
	{Routes: "525", From: "chembur", To: "vashi"},
	{Routes: "21", From: "fort", To: "chowpatty"},
	{Routes: "99", From: "churchgate", To: "bandra"},
	{Routes: "103", From: "churchgate", To: "bandra"},
	{Routes: "84 / 84Ltd", From: "santacruz", To: "andheri"},
	{Routes: "132", From: "matunga", To: "dadar"},
	{Routes: "174", From: "sion", To: "kurla"},
	{Routes: "368", From: "jogeshwari", To: "goregaon"},
	{Routes: "AC-101", From: "fort", To: "andheri"},
	{Routes: "AC-131", From: "churchgate", To: "andheri"},
}
