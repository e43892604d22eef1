package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/genai"
	"github.com/hgapps/medicare-api/util"
)

// GetNews godoc
// @Summary      Health news feed
// @Description  Return a generated health-news digest, cached for a few minutes per language, focus, and region
// @Tags         News
// @Produce      json
// @Param        focus  query string false "Topic or free-text search"
// @Param        region query string false "Region override, e.g. Chennai/India"
// @Success      200 {object} util.APIResponse{data=[]model.NewsItem}
// @Failure      503 {object} util.APIResponse "News generation unavailable"
// @Router       /news [get]
func GetNews(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	client, ok := getGenAIOrRespond(c)
	if !ok {
		return
	}

	lang := st.Language()
	focus := c.Query("focus")
	region := c.Query("region")
	if region == "" {
		if city, country := util.GetIPLocation(c.ClientIP()); country != "" {
			region = fmt.Sprintf("%s/%s", city, country)
		}
	}

	if items, ok := util.GetCachedNews(lang, focus, region); ok {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: items})
		return
	}

	items, err := client.FetchNews(c.Request.Context(), genai.NewsQuery{
		Focus:    focus,
		Region:   region,
		Language: lang,
	})
	if err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: "News feed is unavailable", Err: err})
		return
	}

	util.SetCachedNews(lang, focus, region, items)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: items})
}

// GetLiveNews godoc
// @Summary      Breaking health news
// @Description  Return a single breaking item when one is available; uncached
// @Tags         News
// @Produce      json
// @Success      200 {object} util.APIResponse{data=model.NewsItem}
// @Failure      503 {object} util.APIResponse "News generation unavailable"
// @Router       /news/live [get]
func GetLiveNews(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	client, ok := getGenAIOrRespond(c)
	if !ok {
		return
	}

	item, err := client.BreakingNews(c.Request.Context(), st.Language())
	if err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: "Live news is unavailable", Err: err})
		return
	}
	if item == nil {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "No breaking news", Data: nil})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: item})
}
