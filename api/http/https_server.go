package http

import (
	"ContactBook/internal/config"
	"ContactBook/internal/initial"
	jwtMiddleware "ContactBook/internal/middleware/jwt"
	contactHandler "ContactBook/internal/modules/contact/interface/http"
	"ContactBook/pkg/back"
	"ContactBook/pkg/ssl"
	"ContactBook/pkg/util/myjwt"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine 组装路由。jwtConfig.key 非空时 /contact 下的接口需要 Bearer token
func NewEngine(conf *config.Config, contact *initial.ContactModule) (*gin.Engine, error) {
	ge := gin.New()
	ge.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	ge.Use(cors.New(corsConfig))
	if conf.MainConfig.SSLRedirect {
		ge.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	var signer *myjwt.Signer
	if conf.JwtConfig.Key != "" {
		s, err := myjwt.NewSigner(conf.JwtConfig, conf.MainConfig.AppName)
		if err != nil {
			return nil, err
		}
		signer = s
	}

	contactH := contactHandler.NewContactHandler(contact.Service)
	wsH := contactHandler.NewWsHandler(contact.Hub, signer)

	ge.GET("/ping", func(c *gin.Context) {
		back.Success(c, gin.H{"app": conf.MainConfig.AppName})
	})
	// WebSocket 握手自己校验 query 里的 token
	ge.GET("/contact/ws", wsH.Connect)

	authed := ge.Group("/contact")
	if signer != nil {
		authed.Use(jwtMiddleware.Auth(signer))
	}
	authed.POST("/addContact", contactH.AddContact)
	authed.POST("/getContacts", contactH.GetContacts)
	authed.POST("/getContactsByName", contactH.GetContactsByName)
	authed.POST("/getContactsByPhoneNumber", contactH.GetContactsByPhoneNumber)
	authed.POST("/removeContactByPhoneNumber", contactH.RemoveContactByPhoneNumber)

	return ge, nil
}
