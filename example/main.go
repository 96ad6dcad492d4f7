package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/theflywheel/hashadt"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	printPair := func(w io.Writer, key string, value int) {
		fmt.Fprintf(w, "%s=%d", key, value)
	}
	cleanup := func(key string, value int) {
		logger.Info("releasing pair", zap.String("key", key), zap.Int("value", value))
	}

	table, err := hashadt.New(hashadt.HashString, hashadt.EqualString, printPair, cleanup)
	if err != nil {
		logger.Fatal("failed to create table", zap.Error(err))
	}

	// Insert past the resize threshold to exercise growth
	for i := 0; i < 20; i++ {
		table.Put(fmt.Sprintf("key-%d", i), i*100)
	}
	logger.Info("inserted pairs",
		zap.Int("size", table.Len()),
		zap.Int("capacity", table.Cap()),
		zap.Int("rehashes", table.Rehashes()))

	// Retrieve a mix of present and absent keys
	for i := 0; i < 25; i += 5 {
		key := fmt.Sprintf("key-%d", i)
		if v, ok := table.Get(key); ok {
			fmt.Printf("%s => %d\n", key, v)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value and show the previous one
	if prev, ok := table.Put("key-2", 999); ok {
		fmt.Printf("key-2 updated, previous value %d\n", prev)
	}
	if v, ok := table.Get("key-2"); ok {
		fmt.Printf("key-2 => %d\n", v)
	}

	table.Dump(os.Stdout, true)

	// Companion containers
	arr := hashadt.NewArray[string](4)
	for _, k := range table.Keys() {
		arr.Append(k)
	}
	logger.Info("collected keys", zap.Int("count", arr.Len()), zap.Int("capacity", arr.Cap()))

	queue := hashadt.NewQueue[int](8)
	for _, v := range table.Values() {
		if err := queue.Enqueue(v); err != nil {
			logger.Warn("queue full", zap.Int("queued", queue.Len()))
			break
		}
	}
	for !queue.IsEmpty() {
		v, _ := queue.Dequeue()
		fmt.Printf("dequeued %d\n", v)
	}

	table.Destroy()
	logger.Info("example completed")
}
