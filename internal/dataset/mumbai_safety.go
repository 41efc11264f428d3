package dataset

import "margdarshak.in/internal/geo"

// Safety zones across Mumbai. Base scores are 1 (avoid) to 10 (very safe);
// NightRisk zones take a penalty during the night window.
var mumbaiSafetyZones = []SafetyZone{
	// South Mumbai
	{Area: "Colaba", Center: geo.Point{Lat: 18.9150, Lng: 72.8250}, BaseScore: 8, NightRisk: false},
	{Area: "Fort", Center: geo.Point{Lat: 18.9350, Lng: 72.8350}, BaseScore: 8, NightRisk: false},
	{Area: "Marine Drive", Center: geo.Point{Lat: 18.9430, Lng: 72.8230}, BaseScore: 9, NightRisk: false},
	{Area: "Nariman Point", Center: geo.Point{Lat: 18.9255, Lng: 72.8242}, BaseScore: 8, NightRisk: false},
	{Area: "Grant Road", Center: geo.Point{Lat: 18.9630, Lng: 72.8180}, BaseScore: 6, NightRisk: true},
	{Area: "Mumbai Central", Center: geo.Point{Lat: 18.9700, Lng: 72.8190}, BaseScore: 6, NightRisk: true},
	{Area: "Byculla", Center: geo.Point{Lat: 18.9780, Lng: 72.8340}, BaseScore: 5, NightRisk: true},

	// Central Mumbai
	{Area: "Worli", Center: geo.Point{Lat: 19.0050, Lng: 72.8170}, BaseScore: 8, NightRisk: false},
	{Area: "Lower Parel", Center: geo.Point{Lat: 18.9950, Lng: 72.8290}, BaseScore: 7, NightRisk: false},
	{Area: "Dadar", Center: geo.Point{Lat: 19.0178, Lng: 72.8440}, BaseScore: 6, NightRisk: true},
	{Area: "Dharavi", Center: geo.Point{Lat: 19.0440, Lng: 72.8530}, BaseScore: 3, NightRisk: true},
	{Area: "Sion", Center: geo.Point{Lat: 19.0440, Lng: 72.8620}, BaseScore: 5, NightRisk: true},
	{Area: "Mahim", Center: geo.Point{Lat: 19.0350, Lng: 72.8400}, BaseScore: 6, NightRisk: true},

	// Western suburbs
	{Area: "Bandra West", Center: geo.Point{Lat: 19.0550, Lng: 72.8300}, BaseScore: 8, NightRisk: false},
	{Area: "BKC", Center: geo.Point{Lat: 19.0640, Lng: 72.8660}, BaseScore: 9, NightRisk: false},
	{Area: "Khar", Center: geo.Point{Lat: 19.0712, Lng: 72.8372}, BaseScore: 7, NightRisk: false},
	{Area: "Santacruz", Center: geo.Point{Lat: 19.0830, Lng: 72.8400}, BaseScore: 7, NightRisk: false},
	{Area: "Vile Parle", Center: geo.Point{Lat: 19.0980, Lng: 72.8460}, BaseScore: 7, NightRisk: false},
	{Area: "Andheri West", Center: geo.Point{Lat: 19.1250, Lng: 72.8350}, BaseScore: 7, NightRisk: false},
	{Area: "Andheri East", Center: geo.Point{Lat: 19.1150, Lng: 72.8650}, BaseScore: 6, NightRisk: true},
	{Area: "Jogeshwari", Center: geo.Point{Lat: 19.1365, Lng: 72.8400}, BaseScore: 5, NightRisk: true},
	{Area: "Goregaon", Center: geo.Point{Lat: 19.1640, Lng: 72.8500}, BaseScore: 6, NightRisk: false},
	{Area: "Malad", Center: geo.Point{Lat: 19.1865, Lng: 72.8480}, BaseScore: 6, NightRisk: true},
	{Area: "Kandivali", Center: geo.Point{Lat: 19.2060, Lng: 72.8500}, BaseScore: 7, NightRisk: false},
	{Area: "Borivali", Center: geo.Point{Lat: 19.2290, Lng: 72.8560}, BaseScore: 7, NightRisk: false},
	{Area: "Dahisar", Center: geo.Point{Lat: 19.2560, Lng: 72.8650}, BaseScore: 6, NightRisk: true},

	// Eastern suburbs
	{Area: "Kurla", Center: geo.Point{Lat: 19.0700, Lng: 72.8800}, BaseScore: 4, NightRisk: true},
	{Area: "Ghatkopar", Center: geo.Point{Lat: 19.0860, Lng: 72.9080}, BaseScore: 6, NightRisk: true},
	{Area: "Powai", Center: geo.Point{Lat: 19.1200, Lng: 72.9070}, BaseScore: 8, NightRisk: false},
	{Area: "Vikhroli", Center: geo.Point{Lat: 19.1060, Lng: 72.9260}, BaseScore: 5, NightRisk: true},
	{Area: "Bhandup", Center: geo.Point{Lat: 19.1450, Lng: 72.9370}, BaseScore: 5, NightRisk: true},
	{Area: "Mulund", Center: geo.Point{Lat: 19.1720, Lng: 72.9560}, BaseScore: 7, NightRisk: false},
	{Area: "Thane", Center: geo.Point{Lat: 19.1860, Lng: 72.9750}, BaseScore: 7, NightRisk: false},

	// Harbour / Navi Mumbai
	{Area: "Chembur", Center: geo.Point{Lat: 19.0620, Lng: 72.8970}, BaseScore: 6, NightRisk: true},
	{Area: "Mankhurd", Center: geo.Point{Lat: 19.0510, Lng: 72.9310}, BaseScore: 3, NightRisk: true},
	{Area: "Vashi", Center: geo.Point{Lat: 19.0760, Lng: 72.9990}, BaseScore: 8, NightRisk: false},
	{Area: "Nerul", Center: geo.Point{Lat: 19.0330, Lng: 73.0160}, BaseScore: 7, NightRisk: false},
	{Area: "Belapur", Center: geo.Point{Lat: 19.0230, Lng: 73.0370}, BaseScore: 7, NightRisk: false},
}
