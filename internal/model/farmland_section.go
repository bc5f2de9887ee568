package model

// FarmlandSection is a sub-page shown under farmland projects only.
type FarmlandSection struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

var FarmlandSections = []FarmlandSection{
	{
		Key:     "farm-land",
		Title:   "Farm Land",
		Content: "The Sungraze farmland is mainly built for land cultivation and producing variety of crops in one common place. Sungraze implements innovative strategies to promote conscious food choices.",
		Image:   "/farmland.jpg",
	},
	{
		Key:     "club-house",
		Title:   "Club House",
		Content: "The Club at SUNGRAZE Farms is spread over 6 acres and perfectly blended with nature. It becomes a preferred spot for mega events and leisure.",
		Image:   "/clubhouse.jpg",
	},
	{
		Key:     "naturopathy",
		Title:   "Naturopathy",
		Content: "Prakruthi Arogya Dhama is spread over 5 acres to promote physical, mental and spiritual well-being through natural therapies.",
		Image:   "/naturopathy.jpg",
	},
	{
		Key:     "spiritual-retreat",
		Title:   "Spiritual Retreat",
		Content: "In modern Yoga, a retreat is a recreational holiday where daily stress is left behind to reconnect through meditation and asanas.",
		Image:   "/spiritual.jpg",
	},
}
