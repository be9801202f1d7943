package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

/*
	本地喂价模拟服务，代替真实的外部价格源：
	GET  /price            返回最新报价（十进制，8位隐含小数）
	POST /price?value=N    更新报价
*/

var mu sync.Mutex
var quote int64

func getPrice(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	w.Write([]byte(strconv.FormatInt(quote, 10)))
}

func setPrice(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad value"))
		return
	}
	mu.Lock()
	quote = v
	mu.Unlock()
	log.Printf("quote updated: %d\n", v)
	w.Write([]byte(fmt.Sprintf("quote set to %d\n", v)))
}

func main() {
	port := flag.Int("p", 8080, "listen port")
	initial := flag.Int64("price", 200000000000, "initial quote (8 implied decimals)")
	flag.Parse()
	quote = *initial

	r := mux.NewRouter()
	r.HandleFunc("/price", getPrice).Methods("GET")
	r.HandleFunc("/price", setPrice).Methods("POST")
	server := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", *port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Println("Starting feed server.")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
