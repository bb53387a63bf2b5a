package schema

// VideoObject is the definition for video content.
type VideoObject struct {
	definition
}

// NewVideoObject creates the VideoObject definition.
func NewVideoObject() *VideoObject {
	return &VideoObject{definition{
		typeName:    "VideoObject",
		label:       "Video",
		description: "A video with thumbnail, upload date and playback URLs.",
		required:    []string{"name", "thumbnailUrl", "uploadDate"},
		recommended: []string{"description", "duration", "contentUrl", "embedUrl"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The video title.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short video description.", DocURL: docURL("description")},
			{Name: "thumbnailUrl", Type: TypeURL, Auto: "featured_image", Description: "Thumbnail image URL.", DocURL: docURL("thumbnailUrl")},
			{Name: "uploadDate", Type: TypeDate, Auto: "post_date", Description: "Upload date.", DocURL: docURL("uploadDate")},
			{Name: "duration", Type: TypeDuration, Auto: "meta:_video_duration", Description: "Video length.", Example: "PT2M30S", DocURL: docURL("duration")},
			{Name: "contentUrl", Type: TypeURL, Auto: "meta:_video_url", Description: "Direct URL of the video file.", DocURL: docURL("contentUrl")},
			{Name: "embedUrl", Type: TypeURL, Auto: "meta:_video_embed", Description: "Embeddable player URL.", DocURL: docURL("embedUrl")},
		},
	}}
}

// Build assembles the VideoObject.
func (v *VideoObject) Build(ctx *BuildContext) *Object {
	obj := NewObject(v.typeName)
	v.fill(ctx, obj, v.auto)
	obj.Clean()
	return obj
}

func (v *VideoObject) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "thumbnailUrl":
		if item.Image != nil {
			return item.Image.URL
		}
		return nil
	case "uploadDate":
		return isoDate(item.Published)
	case "duration":
		return item.MetaValue("_video_duration")
	case "contentUrl":
		return item.MetaValue("_video_url")
	case "embedUrl":
		return item.MetaValue("_video_embed")
	}
	return nil
}
