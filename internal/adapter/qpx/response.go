package qpx

// tripsSearchResponse is the subset of the QPX body selected by TripsFields.
type tripsSearchResponse struct {
	Trips *tripsData `json:"trips"`
}

type tripsData struct {
	TripOption []tripOption `json:"tripOption"`
}

type tripOption struct {
	SaleTotal string      `json:"saleTotal"`
	Slice     []sliceInfo `json:"slice"`
}

type sliceInfo struct {
	Duration int           `json:"duration"`
	Segment  []segmentInfo `json:"segment"`
}

type segmentInfo struct {
	Flight flightInfo `json:"flight"`
	Leg    []legInfo  `json:"leg"`
}

type flightInfo struct {
	Carrier string `json:"carrier"`
	Number  string `json:"number"`
}

type legInfo struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}
