package schema

// Event is the definition for events with structured location data.
type Event struct {
	definition
}

// NewEvent creates the Event definition.
func NewEvent() *Event {
	return &Event{definition{
		typeName:    "Event",
		label:       "Event",
		description: "An event happening at a certain time and location.",
		required:    []string{"name", "startDate", "location"},
		recommended: []string{"endDate", "description", "image", "offers", "organizer", "eventStatus", "eventAttendanceMode"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", Example: "MusicEvent", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The event name.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short event description.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "The event image.", DocURL: docURL("image")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "The event page URL.", DocURL: docURL("url")},
			{Name: "startDate", Type: TypeDate, Auto: "meta:_event_start", Description: "Start date and time.", Example: "2025-06-01T19:00:00+02:00", DocURL: docURL("startDate")},
			{Name: "endDate", Type: TypeDate, Auto: "meta:_event_end", Description: "End date and time.", DocURL: docURL("endDate")},
			{Name: "location", Type: TypeObject, Auto: "meta:_event_location", Description: "The event venue with address and coordinates.", DocURL: docURL("location")},
			{Name: "offers", Type: TypeObject, Auto: "meta:_event_price", Description: "Ticket offer.", DocURL: docURL("offers")},
			{Name: "organizer", Type: TypeOrganization, Auto: "site_name", Description: "The organizing entity.", DocURL: docURL("organizer")},
			{Name: "eventStatus", Type: TypeText, Description: "Scheduled, cancelled, postponed...", Example: "EventScheduled", DocURL: docURL("eventStatus")},
			{Name: "eventAttendanceMode", Type: TypeText, Description: "Offline, online or mixed attendance.", DocURL: docURL("eventAttendanceMode")},
		},
	}}
}

// Build assembles the Event object.
func (e *Event) Build(ctx *BuildContext) *Object {
	obj := NewObject(e.typeName)
	e.fill(ctx, obj, e.auto)

	// A mapped location may arrive as a loose map from a nested source;
	// normalize it into a Place.
	if v, ok := obj.Get("location"); ok {
		if m := asMap(v); m != nil {
			if place := PlaceObject(m); place != nil {
				obj.Set("location", place)
			} else {
				obj.Delete("location")
			}
		}
	}
	normalizeEnum(obj, "eventStatus")
	normalizeEnum(obj, "eventAttendanceMode")

	obj.Clean()
	return obj
}

func (e *Event) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "image":
		return ImageObjectFrom(item.Image)
	case "url":
		return item.URL
	case "startDate":
		return item.MetaValue("_event_start")
	case "endDate":
		return item.MetaValue("_event_end")
	case "location":
		return PlaceObject(asMap(item.MetaValue("_event_location")))
	case "offers":
		price := item.MetaValue("_event_price")
		if price == nil {
			return nil
		}
		return OfferObject(map[string]any{"price": price, "url": item.URL}, currencyFor(ctx))
	case "organizer":
		return OrganizationObject(ctx.Site())
	}
	return nil
}

// normalizeEnum converts a bare schema.org enumeration name ("EventScheduled")
// into its full URL, leaving URLs untouched and dropping invalid values.
func normalizeEnum(obj *Object, property string) {
	v, ok := obj.Get(property)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		return
	}
	if normalized, ok := NormalizeAdditionalType(s); ok {
		obj.Set(property, normalized)
	} else {
		obj.Delete(property)
	}
}
